package models

// ServiceCategory identifies one of the bookable home-service lines.
type ServiceCategory string

const (
	CategoryCleaning    ServiceCategory = "cleaning"
	CategoryLaundry     ServiceCategory = "laundry"
	CategoryCooking     ServiceCategory = "cooking"
	CategoryPestControl ServiceCategory = "pest_control"
)

// RoomType keys per-room cleaning rates.
type RoomType string

const (
	RoomBedroom    RoomType = "bedroom"
	RoomBathroom   RoomType = "bathroom"
	RoomKitchen    RoomType = "kitchen"
	RoomLivingRoom RoomType = "living_room"
	RoomDiningRoom RoomType = "dining_room"
	RoomBalcony    RoomType = "balcony"
	RoomStudy      RoomType = "study"
	RoomStore      RoomType = "store"
)

// ServiceOption is a selectable sub-offering whose price overrides the base price.
type ServiceOption struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

// Service represents a bookable offering as stored in the catalog.
// Price is in currency units (Naira); no minor-unit conversion happens here.
type Service struct {
	ID          string               `bson:"id" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Category    ServiceCategory      `bson:"category" json:"category"`
	Price       float64              `bson:"price" json:"price"`
	Options     []ServiceOption      `bson:"options,omitempty" json:"options,omitempty"`
	RoomPrices  map[RoomType]float64 `bson:"roomPrices,omitempty" json:"roomPrices,omitempty"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Icon        string               `bson:"icon,omitempty" json:"icon,omitempty"`
	Currency    string               `bson:"currency,omitempty" json:"currency,omitempty"`
	Active      bool                 `bson:"active" json:"active"`
}

// OptionByID resolves a selected option id against the service's options.
func (s Service) OptionByID(id string) (ServiceOption, bool) {
	if id == "" {
		return ServiceOption{}, false
	}
	for _, opt := range s.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return ServiceOption{}, false
}
