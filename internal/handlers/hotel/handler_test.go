package hotel_test

import (
	"net/http"
	"net/http/httptest"
	otelMocks "hoteldash/infras/otel/mocks"
	"hoteldash/internal/domains/hotel/model"
	"hoteldash/internal/domains/hotel/model/dto"
	serviceMocks "hoteldash/internal/domains/hotel/service/mocks"
	"hoteldash/internal/handlers/hotel"
	gDto "hoteldash/shared/dto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T) (*serviceMocks.MockHotel, http.Handler) {
	t.Helper()

	svc := serviceMocks.NewMockHotel(gomock.NewController(t))

	handler := hotel.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func get(router http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	return w
}

func TestHandler_GetHotels(t *testing.T) {
	t.Run("luxury hotels by name", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error) {
				assert.Equal(t, model.FieldName, params.SortBy)
				assert.Equal(t, []any{
					gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: "pope", Table: model.TableName},
					gDto.Filter{Field: model.FieldHotelType, Operator: gDto.FilterOperatorEq, Value: "L", Table: model.TableName},
				}, filter.Filters)

				return dto.GetHotelsResponse{
					Hotels:    []dto.HotelResponse{{ID: 1, Name: "The Pope", HotelType: "L", TypeName: "luxury"}},
					TotalData: 1,
					TotalPage: 1,
				}, nil
			})

		w := get(router, "/hotels?name=pope&hotel_type=l&sort_by=name")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The Pope")
	})

	t.Run("unknown hotel type", func(t *testing.T) {
		_, router := setupRouter(t)

		assert.Equal(t, http.StatusBadRequest, get(router, "/hotels?hotel_type=X").Code)
	})
}

func TestHandler_GetHotelByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().Get(gomock.Any(), int64(3)).Return(dto.HotelResponse{ID: 3, Name: "Discount"}, nil)

		assert.Equal(t, http.StatusOK, get(router, "/hotels/3").Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().Get(gomock.Any(), int64(9)).Return(dto.HotelResponse{}, model.ErrHotelNotFound)

		w := get(router, "/hotels/9")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "hotel not found")
	})
}
