package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"price-predictor/internal/dto/request"
	"price-predictor/internal/dto/response"
	"price-predictor/internal/usecase"
	"price-predictor/pkg/utils"

	"go.uber.org/zap"
)

const singleTitle = "Single-customer Prediction"

type PredictHandler struct {
	service usecase.PredictService
	views   *Views
	log     *zap.Logger
}

func NewPredictHandler(service usecase.PredictService, views *Views, log *zap.Logger) *PredictHandler {
	return &PredictHandler{
		service: service,
		views:   views,
		log:     log.With(zap.String("handler", "predict")),
	}
}

type singlePage struct {
	Form         request.PredictionRequest
	FlightTypes  []string
	CabinClasses []string
	FieldErrors  map[string]string
	Result       *response.PredictionView
	Error        string
}

func newSinglePage(form request.PredictionRequest) *singlePage {
	return &singlePage{
		Form:         form,
		FlightTypes:  request.FlightTypes,
		CabinClasses: request.CabinClasses,
	}
}

// Page handles GET /single
func (h *PredictHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, ModeSingle, singleTitle, newSinglePage(request.DefaultPredictionRequest()))
}

// Submit handles POST /single. Endpoint failures are shown on the page, never raised.
func (h *PredictHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		page := newSinglePage(request.DefaultPredictionRequest())
		page.Error = "Invalid form submission"
		h.views.Render(w, http.StatusBadRequest, ModeSingle, singleTitle, page)
		return
	}

	req, fieldErrors := parsePredictionForm(r)
	page := newSinglePage(req)

	if len(fieldErrors) == 0 {
		fieldErrors = utils.ValidateStruct(req)
	}
	if len(fieldErrors) > 0 {
		page.FieldErrors = fieldErrors
		h.views.Render(w, http.StatusBadRequest, ModeSingle, singleTitle, page)
		return
	}

	result, err := h.service.PredictOne(r.Context(), &req)
	if err != nil {
		h.log.Warn("Single prediction failed", zap.Error(err))
		page.Error = usecase.ErrorMessage(err)
		h.views.Render(w, http.StatusOK, ModeSingle, singleTitle, page)
		return
	}

	page.Result = result
	h.views.Render(w, http.StatusOK, ModeSingle, singleTitle, page)
}

// PredictJSON handles POST /api/predict
func (h *PredictHandler) PredictJSON(w http.ResponseWriter, r *http.Request) {
	var req request.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.PredictOne(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "predict")
		return
	}

	utils.ResponseSuccess(w, "Prediction: "+result.Label, result)
}

func (h *PredictHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case strings.Contains(err.Error(), "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Warn(operation+" failed at prediction endpoint", zap.Error(err))
		utils.ResponseBadGateway(w, usecase.ErrorMessage(err))
	}
}

// parsePredictionForm reads the nine form fields; missing fields keep their defaults
func parsePredictionForm(r *http.Request) (request.PredictionRequest, map[string]string) {
	req := request.DefaultPredictionRequest()
	errs := make(map[string]string)

	readFloat := func(name string, dst *float64) {
		v := strings.TrimSpace(r.PostFormValue(name))
		if v == "" {
			return
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs[name] = "Must be a number"
			return
		}
		*dst = f
	}
	readInt := func(name string, dst *int) {
		v := strings.TrimSpace(r.PostFormValue(name))
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs[name] = "Must be a whole number"
			return
		}
		*dst = n
	}
	readString := func(name string, dst *string) {
		if v := strings.TrimSpace(r.PostFormValue(name)); v != "" {
			*dst = v
		}
	}

	readFloat("total_spent", &req.TotalSpent)
	readFloat("avg_order_value", &req.AvgOrderValue)
	readFloat("avg_purchase_frequency", &req.AvgPurchaseFrequency)
	readInt("days_since_last_purchase", &req.DaysSinceLastPurchase)
	readFloat("discount_behavior", &req.DiscountBehavior)
	readInt("loyalty_program_member", &req.LoyaltyProgramMember)
	readInt("days_in_advance", &req.DaysInAdvance)
	readString("flight_type", &req.FlightType)
	readString("cabin_class", &req.CabinClass)

	return req, errs
}
