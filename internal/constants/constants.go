package constants

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// Product category constants
const (
	CategoryPistols     = "pistols"
	CategoryRevolvers   = "revolvers"
	CategoryShotguns    = "shotguns"
	CategoryAccessories = "accessories"
	CategoryTactical    = "tactical"
	CategorySport       = "sport"
)

// Product categories in display order
var ProductCategories = []string{
	CategoryPistols,
	CategoryRevolvers,
	CategoryShotguns,
	CategoryAccessories,
	CategoryTactical,
	CategorySport,
}

// Display placement constants
const (
	PlacementHeader      = "header"
	PlacementFeatured    = "featured"
	PlacementRecommended = "recommended"
	PlacementTactical    = "tactical"
	PlacementSport       = "sport"
)

// Display placements in display order
var DisplayPlacements = []string{
	PlacementHeader,
	PlacementFeatured,
	PlacementRecommended,
	PlacementTactical,
	PlacementSport,
}

// Durable store key prefixes
const (
	StoreKeyCartUserPrefix   = "cart:user:"
	StoreKeyCartDevicePrefix = "cart:device:"
	StoreKeyPendingProduct   = "pending:product:"
	StoreKeyPendingFavorite  = "pending:favorite:"
)

// User status constants
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Login log status constants
const (
	LoginLogStatusSuccess = "success"
	LoginLogStatusFailed  = "failed"
)

// Captcha provider constants
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// Captcha scene constants
const (
	CaptchaSceneLogin    = "login"
	CaptchaSceneRegister = "register"
)

// Cache default constants
const (
	RedisPrefixDefault = "dq"
)

// Currency constants
const (
	SiteCurrencyDefault = "BRL"
)

// Site locale constants
const (
	LocalePtBR = "pt-BR"
	LocaleEnUS = "en-US"
)

// Supported site locales in fallback order
var SupportedLocales = []string{LocalePtBR, LocaleEnUS}
