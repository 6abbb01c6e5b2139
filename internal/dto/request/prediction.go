package request

// PredictionRequest is the wire body sent to the prediction endpoint.
// Validation tags mirror the constraints the single-record form widgets impose.
type PredictionRequest struct {
	TotalSpent            float64 `json:"total_spent"`
	AvgOrderValue         float64 `json:"avg_order_value"`
	AvgPurchaseFrequency  float64 `json:"avg_purchase_frequency"`
	DaysSinceLastPurchase int     `json:"days_since_last_purchase"`
	DiscountBehavior      float64 `json:"discount_behavior" validate:"min=0,max=1"`
	LoyaltyProgramMember  int     `json:"loyalty_program_member" validate:"oneof=0 1"`
	DaysInAdvance         int     `json:"days_in_advance"`
	FlightType            string  `json:"flight_type" validate:"required,oneof=domestic international"`
	CabinClass            string  `json:"cabin_class" validate:"required,oneof=economy business"`
}

const (
	FlightTypeDomestic      = "domestic"
	FlightTypeInternational = "international"

	CabinClassEconomy  = "economy"
	CabinClassBusiness = "business"
)

var (
	FlightTypes  = []string{FlightTypeDomestic, FlightTypeInternational}
	CabinClasses = []string{CabinClassEconomy, CabinClassBusiness}
)

// DefaultPredictionRequest returns the values the single-record form starts with
func DefaultPredictionRequest() PredictionRequest {
	return PredictionRequest{
		TotalSpent:            500.0,
		AvgOrderValue:         100.0,
		AvgPurchaseFrequency:  3.0,
		DaysSinceLastPurchase: 30,
		DiscountBehavior:      0.5,
		LoyaltyProgramMember:  0,
		DaysInAdvance:         14,
		FlightType:            FlightTypeDomestic,
		CabinClass:            CabinClassEconomy,
	}
}
