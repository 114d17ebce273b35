package model

// ProjectDimensions describes the surface being coated. When both Length and
// Width are set their product is the area; otherwise SquareFootage is used.
// Bounds keep derived material counts inside the int range.
type ProjectDimensions struct {
	Length        float64 `json:"length" binding:"gte=0,lte=100000"`
	Width         float64 `json:"width" binding:"gte=0,lte=100000"`
	SquareFootage float64 `json:"square_footage" binding:"gte=0,lte=10000000"`
}

func (d ProjectDimensions) Area() float64 {
	if d.Length > 0 && d.Width > 0 {
		return d.Length * d.Width
	}
	if d.SquareFootage < 0 {
		return 0
	}
	return d.SquareFootage
}

type SurfaceSystemSpec struct {
	PressureWash      bool    `json:"pressure_wash"`
	AcidWash          bool    `json:"acid_wash"`
	PatchWork         bool    `json:"patch_work"`
	PatchGallons      float64 `json:"patch_gallons" binding:"gte=0,lte=100000"`
	MinorCrackGallons float64 `json:"minor_crack_gallons" binding:"gte=0,lte=100000"`
	MajorCrackGallons float64 `json:"major_crack_gallons" binding:"gte=0,lte=100000"`
	FiberglassMesh    bool    `json:"fiberglass_mesh"`
	FiberglassArea    float64 `json:"fiberglass_area" binding:"gte=0,lte=10000000"`
	CushionSystem     bool    `json:"cushion_system"`
	CushionArea       float64 `json:"cushion_area" binding:"gte=0,lte=10000000"`
	Resurface         bool    `json:"resurface"`
}

type BasketballCourtType string

const (
	BasketballHalfCourt BasketballCourtType = "half"
	BasketballFullCourt BasketballCourtType = "full"
)

type ThreePointLine string

const (
	ThreePointHighSchool ThreePointLine = "high-school"
	ThreePointCollege    ThreePointLine = "college"
	ThreePointNBA        ThreePointLine = "nba"
)

type CourtConfiguration struct {
	TennisCourts           int                 `json:"tennis_courts" binding:"gte=0,lte=1000"`
	TennisCourtColor       string              `json:"tennis_court_color"`
	PickleballCourts       int                 `json:"pickleball_courts" binding:"gte=0,lte=1000"`
	PickleballCourtColor   string              `json:"pickleball_court_color"`
	PickleballKitchenColor string              `json:"pickleball_kitchen_color"`
	BasketballCourts       int                 `json:"basketball_courts" binding:"gte=0,lte=1000"`
	BasketballCourtType    BasketballCourtType `json:"basketball_court_type" binding:"omitempty,oneof=half full"`
	BasketballCourtColor   string              `json:"basketball_court_color"`
	BasketballLaneColor    string              `json:"basketball_lane_color"`
	ThreePointLines        []ThreePointLine    `json:"three_point_lines" binding:"dive,oneof=high-school college nba"`
	ApronColor             string              `json:"apron_color"`
}

type TennisEquipment struct {
	Posts   int  `json:"posts" binding:"gte=0,lte=10000"`
	Install bool `json:"install"`
}

type PickleballEquipment struct {
	PermanentPosts int  `json:"permanent_posts" binding:"gte=0,lte=10000"`
	MobileNets     int  `json:"mobile_nets" binding:"gte=0,lte=10000"`
	Install        bool `json:"install"`
}

type BasketballEquipment struct {
	Adjustable60 int  `json:"adjustable_60" binding:"gte=0,lte=10000"`
	Adjustable72 int  `json:"adjustable_72" binding:"gte=0,lte=10000"`
	Fixed        int  `json:"fixed" binding:"gte=0,lte=10000"`
	Install      bool `json:"install"`
}

// WindscreenEquipment quantities are linear feet.
type WindscreenEquipment struct {
	StandardFeet  float64 `json:"standard_feet" binding:"gte=0,lte=100000"`
	HighGradeFeet float64 `json:"high_grade_feet" binding:"gte=0,lte=100000"`
	Install       bool    `json:"install"`
}

type EquipmentSpec struct {
	Tennis     TennisEquipment     `json:"tennis"`
	Pickleball PickleballEquipment `json:"pickleball"`
	Basketball BasketballEquipment `json:"basketball"`
	Windscreen WindscreenEquipment `json:"windscreen"`
}

// LogisticsSpec zero values mean "not provided"; see DefaultLogistics.
type LogisticsSpec struct {
	TravelDays      int     `json:"travel_days" binding:"gte=0,lte=365"`
	Trips           int     `json:"trips" binding:"gte=0,lte=1000"`
	DistanceMiles   float64 `json:"distance_miles" binding:"gte=0,lte=100000"`
	AdditionalHours float64 `json:"additional_hours" binding:"gte=0,lte=100000"`
	HotelRate       float64 `json:"hotel_rate" binding:"gte=0,lte=100000"`
	Notes           string  `json:"notes"`
}

const (
	DefaultTravelDays = 2
	DefaultTrips      = 1
	DefaultHotelRate  = 150.0
)

func DefaultLogistics() LogisticsSpec {
	return LogisticsSpec{
		TravelDays: DefaultTravelDays,
		Trips:      DefaultTrips,
		HotelRate:  DefaultHotelRate,
	}
}

// WithDefaults fills every absent field. hotelRate replaces DefaultHotelRate
// when positive.
func (l *LogisticsSpec) WithDefaults(hotelRate float64) LogisticsSpec {
	resolved := DefaultLogistics()
	if hotelRate > 0 {
		resolved.HotelRate = hotelRate
	}
	if l == nil {
		return resolved
	}
	if l.TravelDays > 0 {
		resolved.TravelDays = l.TravelDays
	}
	if l.Trips > 0 {
		resolved.Trips = l.Trips
	}
	if l.HotelRate > 0 {
		resolved.HotelRate = l.HotelRate
	}
	if l.DistanceMiles > 0 {
		resolved.DistanceMiles = l.DistanceMiles
	}
	if l.AdditionalHours > 0 {
		resolved.AdditionalHours = l.AdditionalHours
	}
	resolved.Notes = l.Notes
	return resolved
}

// ProjectInput is everything the estimator collects for one job.
type ProjectInput struct {
	Dimensions ProjectDimensions  `json:"dimensions"`
	Surface    SurfaceSystemSpec  `json:"surface"`
	Courts     CourtConfiguration `json:"courts"`
	Equipment  EquipmentSpec      `json:"equipment"`
	Logistics  *LogisticsSpec     `json:"logistics,omitempty"`
}
