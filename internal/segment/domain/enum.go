package domain

type (
	Alignment              string
	StreetLocation         string
	UserRestriction        string
	NoParkingReason        string
	AlternativeUsageReason string
)

const (
	AlignmentParallel      Alignment = "parallel"
	AlignmentPerpendicular Alignment = "perpendicular"
	AlignmentDiagonal      Alignment = "diagonal"
)

const (
	StreetLocationStreet     StreetLocation = "street"
	StreetLocationCurb       StreetLocation = "curb"
	StreetLocationSidewalk   StreetLocation = "sidewalk"
	StreetLocationParkingBay StreetLocation = "parking_bay"
	StreetLocationMiddle     StreetLocation = "middle"
	StreetLocationCarPark    StreetLocation = "car_park"
)

const (
	UserRestrictionAllUsers     UserRestriction = "all_users"
	UserRestrictionHandicap     UserRestriction = "handicap"
	UserRestrictionResidents    UserRestriction = "residents"
	UserRestrictionCarSharing   UserRestriction = "car_sharing"
	UserRestrictionGender       UserRestriction = "gender"
	UserRestrictionElectricCars UserRestriction = "electric_cars"
	UserRestrictionOther        UserRestriction = "other"
)

const (
	NoParkingReasonPrivateParking     NoParkingReason = "private_parking"
	NoParkingReasonBusStop            NoParkingReason = "bus_stop"
	NoParkingReasonBusLane            NoParkingReason = "bus_lane"
	NoParkingReasonTaxi               NoParkingReason = "taxi"
	NoParkingReasonTree               NoParkingReason = "tree"
	NoParkingReasonBikeRacks          NoParkingReason = "bike_racks"
	NoParkingReasonPedestrianCrossing NoParkingReason = "pedestrian_crossing"
	NoParkingReasonPedestrianZone     NoParkingReason = "pedestrian_zone"
	NoParkingReasonDriveway           NoParkingReason = "driveway"
	NoParkingReasonLoadingZone        NoParkingReason = "loading_zone"
	NoParkingReasonStandingZone       NoParkingReason = "standing_zone"
	NoParkingReasonEmergencyExit      NoParkingReason = "emergency_exit"
	NoParkingReasonLoweredCurbSide    NoParkingReason = "lowered_curb_side"
	NoParkingReasonNoStopping         NoParkingReason = "no_stopping"
	NoParkingReasonLane               NoParkingReason = "lane"
)

const (
	AlternativeUsageReasonBusStop AlternativeUsageReason = "bus_stop"
	AlternativeUsageReasonBusLane AlternativeUsageReason = "bus_lane"
	AlternativeUsageReasonMarket  AlternativeUsageReason = "market"
	AlternativeUsageReasonLane    AlternativeUsageReason = "lane"
	AlternativeUsageReasonTaxi    AlternativeUsageReason = "taxi"
	AlternativeUsageReasonLoading AlternativeUsageReason = "loading"
	AlternativeUsageReasonOther   AlternativeUsageReason = "other"
)
