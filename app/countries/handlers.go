package countries

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/osahenru/atlas/app/api"
	"github.com/osahenru/atlas/models"
)

// Handler handles HTTP requests for countries
type Handler struct {
	service Service
}

// NewHandler creates a new country handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RefreshCountries godoc
// @Summary Refresh country data
// @Description Fetch the country directory and exchange-rate feeds, merge them and regenerate the summary image
// @Tags countries
// @Produce json
// @Success 200 {object} api.Response{data=RefreshResponse}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/refresh [post]
func (h *Handler) RefreshCountries(c *gin.Context) {
	count, err := h.service.RefreshCountries(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrExternalSource) {
			api.ServiceUnavailableResponse(c, "External data source unavailable", err.Error())
			return
		}
		api.InternalErrorResponse(c, "Failed to refresh countries")
		return
	}

	api.SuccessResponse(c, 200, "Countries refreshed successfully", RefreshResponse{Count: count})
}

// ListCountries godoc
// @Summary List countries
// @Description Get all countries, optionally filtered by region or currency code and sorted by estimated GDP
// @Tags countries
// @Produce json
// @Param region query string false "Region (case-insensitive exact match)"
// @Param currency query string false "Currency code (case-insensitive exact match)"
// @Param sort query string false "Sort token; gdp_desc orders by estimated GDP descending"
// @Success 200 {object} api.Response{data=[]CountryResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries [get]
func (h *Handler) ListCountries(c *gin.Context) {
	var query ListCountriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	countries, err := h.service.ListCountries(c.Request.Context(), query.Filter())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch countries")
		return
	}

	api.ListResponse(c, "Countries retrieved successfully", countries, len(countries))
}

// GetCountry godoc
// @Summary Get country by name
// @Description Get a single country by its exact name
// @Tags countries
// @Produce json
// @Param name path string true "Country name"
// @Success 200 {object} api.Response{data=CountryResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/{name} [get]
func (h *Handler) GetCountry(c *gin.Context) {
	name := c.Param("name")

	country, err := h.service.GetCountryByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Country")
			return
		}
		api.InternalErrorResponse(c, "Failed to fetch country")
		return
	}

	api.SuccessResponse(c, 200, "Country retrieved successfully", country)
}

// DeleteCountry godoc
// @Summary Delete a country
// @Description Delete a single country by its exact name
// @Tags countries
// @Produce json
// @Param name path string true "Country name"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/{name} [delete]
func (h *Handler) DeleteCountry(c *gin.Context) {
	name := c.Param("name")

	err := h.service.DeleteCountry(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Country")
			return
		}
		api.InternalErrorResponse(c, "Failed to delete country")
		return
	}

	api.DeletedResponse(c, "Country deleted successfully")
}

// GetStatus godoc
// @Summary Get refresh status
// @Description Get the last refresh timestamp and total country count
// @Tags status
// @Produce json
// @Success 200 {object} api.Response{data=StatusResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/status [get]
func (h *Handler) GetStatus(c *gin.Context) {
	status, err := h.service.GetStatus(c.Request.Context())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch status")
		return
	}

	api.SuccessResponse(c, 200, "Status retrieved successfully", status)
}

// GetSummaryImage godoc
// @Summary Get summary image
// @Description Get the cached summary image produced by the last successful refresh
// @Tags countries
// @Produce png
// @Success 200 {file} binary
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/image [get]
func (h *Handler) GetSummaryImage(c *gin.Context) {
	data, err := h.service.GetSummaryImage(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrImageNotFound) {
			api.NotFoundResponse(c, "Summary image")
			return
		}
		api.InternalErrorResponse(c, "Failed to fetch summary image")
		return
	}

	c.Data(200, "image/png", data)
}
