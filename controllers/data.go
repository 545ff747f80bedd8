package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"go-headphone-store/models"
	"go-headphone-store/store"
	"go-headphone-store/utils"
)

// DataController serves the filterable catalog listing.
type DataController struct {
	Catalog store.DataStore
	Logger  *zap.Logger
}

// NewDataController creates a new DataController.
func NewDataController(catalog store.DataStore, logger *zap.Logger) *DataController {
	return &DataController{
		Catalog: catalog,
		Logger:  logger,
	}
}

// GetAllData returns the catalog, narrowed by the optional headphoneType,
// company, color, price band and search query parameters.
func (dc *DataController) GetAllData(w http.ResponseWriter, r *http.Request) {
	items, err := dc.Catalog.All(r.Context())
	if err != nil {
		dc.Logger.Error("fetch catalog error", zap.Error(err))
		utils.WriteError(w)
		return
	}

	query := r.URL.Query()

	if headphoneType := query.Get("headphoneType"); headphoneType != "" {
		items = filterData(items, func(item models.Data) bool {
			return strings.EqualFold(item.Type, headphoneType)
		})
	}

	if company := strings.ToLower(query.Get("company")); company != "" {
		items = filterData(items, func(item models.Data) bool {
			shortname := strings.ToLower(item.Name.Shortname)
			return strings.SplitN(shortname, " ", 2)[0] == company
		})
	}

	if color := query.Get("color"); color != "" {
		items = filterData(items, func(item models.Data) bool {
			return strings.EqualFold(item.Color, color)
		})
	}

	// Price bands: 1 is budget, 2 is mid-range, 3 is premium. Any other
	// value leaves the listing unfiltered.
	if price := query.Get("price"); price != "" {
		switch band, _ := strconv.Atoi(price); band {
		case 1:
			items = filterData(items, func(item models.Data) bool {
				return item.Price >= 0 && item.Price <= 1000
			})
		case 2:
			items = filterData(items, func(item models.Data) bool {
				return item.Price > 1000 && item.Price <= 10000
			})
		case 3:
			items = filterData(items, func(item models.Data) bool {
				return item.Price > 10000 && item.Price <= 50000
			})
		}
	}

	if search := strings.ToLower(query.Get("search")); search != "" {
		items = filterData(items, func(item models.Data) bool {
			return strings.HasPrefix(strings.ToLower(item.Name.Shortname), search)
		})
	}

	utils.WriteData(w, http.StatusOK, map[string]interface{}{"data": items})
}

// GetDataByIds returns the catalog items matching the comma-separated
// numeric ids in the query string.
func (dc *DataController) GetDataByIds(w http.ResponseWriter, r *http.Request) {
	idsParam := r.URL.Query().Get("ids")
	if idsParam == "" {
		utils.WriteFail(w, http.StatusBadRequest, "IDs not provided")
		return
	}

	ids := []int{}
	for _, raw := range strings.Split(idsParam, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	items, err := dc.Catalog.ByNumericIDs(r.Context(), ids)
	if err != nil {
		dc.Logger.Error("fetch catalog by ids error", zap.Error(err))
		utils.WriteError(w)
		return
	}

	utils.WriteData(w, http.StatusOK, map[string]interface{}{"data": items})
}

func filterData(items []models.Data, keep func(models.Data) bool) []models.Data {
	filtered := []models.Data{}
	for _, item := range items {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
