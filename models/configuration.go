package models

// CleaningType scales room cost for the depth of cleaning requested.
type CleaningType string

const (
	CleaningStandard         CleaningType = "standard"
	CleaningDeep             CleaningType = "deep_cleaning"
	CleaningPostConstruction CleaningType = "post_construction"
	CleaningMoveInOut        CleaningType = "move_in_out"
)

// HouseType scales cleaning cost for the kind of dwelling.
type HouseType string

const (
	HouseFlat     HouseType = "flat"
	HouseBungalow HouseType = "bungalow"
	HouseDuplex   HouseType = "duplex"
	HouseMansion  HouseType = "mansion"
)

// LaundryType scales laundry cost for the finishing requested.
type LaundryType string

const (
	LaundryWashAndFold LaundryType = "wash_and_fold"
	LaundryWashAndIron LaundryType = "wash_and_iron"
	LaundryDryCleaning LaundryType = "dry_cleaning"
)

// LaundryItem keys per-item flat laundry rates.
type LaundryItem string

const (
	ItemShirts   LaundryItem = "shirts"
	ItemTrousers LaundryItem = "trousers"
	ItemSuits    LaundryItem = "suits"
	ItemDresses  LaundryItem = "dresses"
	ItemNatives  LaundryItem = "natives"
	ItemBeddings LaundryItem = "beddings"
	ItemDuvets   LaundryItem = "duvets"
)

// MealType scales cooking cost for the menu tier.
type MealType string

const (
	MealBasic    MealType = "basic"
	MealStandard MealType = "standard"
	MealPremium  MealType = "premium"
)

// PestSeverity scales pest-control cost for infestation level.
type PestSeverity string

const (
	SeverityLow    PestSeverity = "low"
	SeverityMedium PestSeverity = "medium"
	SeverityHigh   PestSeverity = "high"
)

// TreatmentType scales pest-control cost for the treatment applied.
type TreatmentType string

const (
	TreatmentOneTime    TreatmentType = "one_time"
	TreatmentResidual   TreatmentType = "residual"
	TreatmentFumigation TreatmentType = "fumigation"
)

// PestArea names a treatable area of the home.
type PestArea string

const (
	AreaKitchen    PestArea = "kitchen"
	AreaBedroom    PestArea = "bedroom"
	AreaLivingRoom PestArea = "living_room"
	AreaBathroom   PestArea = "bathroom"
	AreaStore      PestArea = "store"
	AreaGarden     PestArea = "garden"
	AreaWholeHouse PestArea = "whole_house"
)

// CleaningDetail holds the user's cleaning choices.
type CleaningDetail struct {
	CleaningType CleaningType     `bson:"cleaningType" json:"cleaningType"`
	HouseType    HouseType        `bson:"houseType" json:"houseType"`
	Rooms        map[RoomType]int `bson:"rooms" json:"rooms"`
}

// LaundryDetail holds the user's laundry choices. When Items is non-nil and
// has at least one entry, per-item pricing applies and Bags is ignored.
type LaundryDetail struct {
	Bags        int                 `bson:"bags" json:"bags"`
	Items       map[LaundryItem]int `bson:"items,omitempty" json:"items,omitempty"`
	LaundryType LaundryType         `bson:"laundryType" json:"laundryType"`
}

// MealDelivery is one scheduled drop-off and its meal count.
type MealDelivery struct {
	Day   string `bson:"day" json:"day"`
	Count int    `bson:"count" json:"count"`
}

// CookingDetail holds the user's meal-plan choices.
type CookingDetail struct {
	MealType         MealType       `bson:"mealType" json:"mealType"`
	MealsPerDelivery []MealDelivery `bson:"mealsPerDelivery" json:"mealsPerDelivery"`
}

// PestControlDetail holds the user's pest-control choices.
type PestControlDetail struct {
	Areas         []PestArea    `bson:"areas" json:"areas"`
	Severity      PestSeverity  `bson:"severity" json:"severity"`
	TreatmentType TreatmentType `bson:"treatmentType" json:"treatmentType"`
}

// ServiceConfiguration captures the caller's in-progress booking choices for
// one service. Exactly one category detail should be populated, matching the
// service's category; a mismatch degrades to base-price-only quoting rather
// than an error.
type ServiceConfiguration struct {
	Price          *float64           `bson:"price,omitempty" json:"price,omitempty"`
	SelectedOption string             `bson:"selectedOption,omitempty" json:"selectedOption,omitempty"`
	ScheduledDays  []string           `bson:"scheduledDays" json:"scheduledDays"` // "2006-01-02" calendar days
	Cleaning       *CleaningDetail    `bson:"cleaning,omitempty" json:"cleaning,omitempty"`
	Laundry        *LaundryDetail     `bson:"laundry,omitempty" json:"laundry,omitempty"`
	Cooking        *CookingDetail     `bson:"cooking,omitempty" json:"cooking,omitempty"`
	PestControl    *PestControlDetail `bson:"pestControl,omitempty" json:"pestControl,omitempty"`
}
