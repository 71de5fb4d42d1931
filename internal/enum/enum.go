package enum

// ── Group A: State machines ──

const (
	TicketStatusNew     = "new"
	TicketStatusCooking = "cooking"
	TicketStatusReady   = "ready"
)

// ── Group B: Session choices ──

const (
	OrderModeDineIn   = "dine-in"
	OrderModeTakeAway = "take-away"
)

const (
	LanguageID = "ID"
	LanguageEN = "EN"
)

// ── Group C: Reference data labels ──

const (
	CategoryAll   = "semua"
	CategoryFood  = "makanan"
	CategoryDrink = "minuman"
	CategorySnack = "snack"
)

const (
	TableStatusAvailable = "available"
	TableStatusOccupied  = "occupied"
	TableStatusReserved  = "reserved"
)

const (
	PaymentMethodCash = "cash"
	PaymentMethodQRIS = "qris"
)

const (
	WalletOVO    = "ovo"
	WalletDANA   = "dana"
	WalletGoPay  = "gopay"
	WalletShopee = "shopee"
)

const (
	UserRoleOwner   = "OWNER"
	UserRoleCashier = "CASHIER"
	UserRoleKitchen = "KITCHEN"
)
