package catalog

import "fmt"

var foodImages = [...]string{
	"https://lh3.googleusercontent.com/aida-public/AB6AXuDFk-hS7J9Brcl_LJGrDh41bxZmVhSMqFDwAUONKuVP-RJH_BZT85h5BIU0K3FDXlREePxbEoF9sFXvb2LlbZ2tQl-dkpLZOzZPMuNL_Z3lQ4QOaL_q2jV2IwTlqmPRbXkKSY_sME6ek7lnFUcfZFZv1z9KMwb-vUPJxYZsDkmj-xEaBcyWmXGHV3Pq0piqvvOZNGy_VZ5TrZEqLPz9Wy2U9OL1_jqBr0s3HUZK3vMuhJzNsPL96vwCCg2SuH3fvIU69nFWPiCYVb",
	"https://lh3.googleusercontent.com/aida-public/AB6AXuAGdWxNdWzBjSIoqXlAaF97raMzj_R35v2dNX8j2OVmyR7K6gdLYkCR3L0lJfp5v1c-xIZVfRJGEGP0iXqBOHjLqBN8pFpxCCt75-h3wJP9CpFwKQxSfR-bnC1YgbK0I7PqkDx7Zv8VhfLgzfkHPrZ4O-UY2iIEJdSqaL6-wjfMuE-5Ghr3lQWWxo7cVNV7tGN27snoKaZnwIL",
	"https://lh3.googleusercontent.com/aida-public/AB6AXuA6aPaJR7tkE_k7GKNtJJsocWXoVuJH-LzYKAXhUw7j7pUQJJvZLT9q-MVFJI8u1Ev07APjLw-TXVOmBjJCEiPR27ZfyQ1oMXwL12F3bh3UXPmhLB4FVkx2n-FnhbK4pBKu7JQJVZMzg",
	"https://lh3.googleusercontent.com/aida-public/AB6AXuAlxGPvjBazsxKdVjPMW_cjrxM1sJCnss92jrvQj1wlp5JRJq2c22qFGvlJ-G_b39cAPgI6RFuH_Qvt_E_5pPL2vJvTDflJcXfmjKbHlGDRjNUfjV5uajM3HmhdfTchHUP-8jVFIFSPVQ",
}

// Menu returns a fresh copy of the sample menu.
func Menu() []MenuItem {
	return []MenuItem{
		{ID: "m1", Name: "Salmon Don", Price: 65000, Image: foodImages[0], Category: CategoryFood, Stock: 12, Badge: "Best Seller", Description: "Fresh salmon sashimi rice bowl"},
		{ID: "m2", Name: "Chicken Katsu", Price: 45000, Image: foodImages[1], Category: CategoryFood, Stock: 8, Description: "Crispy panko fried chicken"},
		{ID: "m3", Name: "Ramen Tonkotsu", Price: 55000, Image: foodImages[2], Category: CategoryFood, Stock: 5, Badge: "New", Description: "Rich pork bone broth ramen"},
		{ID: "m4", Name: "Beef Gyudon", Price: 60000, Image: foodImages[3], Category: CategoryFood, Stock: 10, Description: "Tender simmered beef bowl"},
		{ID: "m5", Name: "Tempura Udon", Price: 48000, Image: foodImages[0], Category: CategoryFood, Stock: 7, Description: "Hot udon with crispy tempura"},
		{ID: "m6", Name: "Sushi Platter", Price: 85000, Image: foodImages[1], Category: CategoryFood, Stock: 3, Badge: "Premium", Description: "12 pcs assorted sushi"},
		{ID: "m7", Name: "Matcha Latte", Price: 28000, Image: foodImages[2], Category: CategoryDrink, Stock: 20, Description: "Creamy Japanese matcha"},
		{ID: "m8", Name: "Ocha Ice", Price: 15000, Image: foodImages[3], Category: CategoryDrink, Stock: 25, Description: "Chilled green tea"},
		{ID: "m9", Name: "Yuzu Soda", Price: 22000, Image: foodImages[0], Category: CategoryDrink, Stock: 15, Badge: "New", Description: "Refreshing citrus soda"},
		{ID: "m10", Name: "Sake", Price: 75000, Image: foodImages[1], Category: CategoryDrink, Stock: 8, Description: "Premium Japanese rice wine"},
		{ID: "m11", Name: "Edamame", Price: 18000, Image: foodImages[2], Category: CategorySnack, Stock: 30, Description: "Steamed salted soybeans"},
		{ID: "m12", Name: "Takoyaki", Price: 25000, Image: foodImages[3], Category: CategorySnack, Stock: 12, Badge: "Popular", Description: "6 pcs octopus balls"},
		{ID: "m13", Name: "Gyoza", Price: 30000, Image: foodImages[0], Category: CategorySnack, Stock: 15, Description: "Pan-fried pork dumplings"},
		{ID: "m14", Name: "Karaage", Price: 32000, Image: foodImages[1], Category: CategorySnack, Stock: 10, Description: "Japanese fried chicken bites"},
	}
}

// Tables returns the twelve sample tables. Capacity grows 2/4/6 by row;
// T03, T06 and T10 are occupied and T08 is reserved.
func Tables() []Table {
	tables := make([]Table, 12)
	for i := range tables {
		capacity := 6
		switch {
		case i < 4:
			capacity = 2
		case i < 8:
			capacity = 4
		}
		status := TableAvailable
		switch i {
		case 2, 5, 9:
			status = TableOccupied
		case 7:
			status = TableReserved
		}
		tables[i] = Table{
			ID:       i + 1,
			Label:    fmt.Sprintf("T%02d", i+1),
			Capacity: capacity,
			Status:   status,
		}
	}
	return tables
}
