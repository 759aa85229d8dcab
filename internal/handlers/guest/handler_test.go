package guest_test

import (
	"net/http"
	"net/http/httptest"
	otelMocks "hoteldash/infras/otel/mocks"
	"hoteldash/internal/domains/guest/model"
	"hoteldash/internal/domains/guest/model/dto"
	serviceMocks "hoteldash/internal/domains/guest/service/mocks"
	"hoteldash/internal/handlers/guest"
	gDto "hoteldash/shared/dto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T) (*serviceMocks.MockGuest, http.Handler) {
	t.Helper()

	svc := serviceMocks.NewMockGuest(gomock.NewController(t))

	handler := guest.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))

	return w
}

func TestHandler_CreateGuest(t *testing.T) {
	body := `{"first_name":"Mette","last_name":"Hansen","phone":"+4512345678","email":"mette@example.com","address":"Nørregade 1","guest_type":"D"}`

	t.Run("created", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().Create(gomock.Any(), dto.CreateGuestRequest{
			FirstName: "Mette",
			LastName:  "Hansen",
			Phone:     "+4512345678",
			Email:     "mette@example.com",
			Address:   "Nørregade 1",
			GuestType: "D",
		}).Return(dto.GuestResponse{ID: 6, Email: "mette@example.com", Status: "active"}, nil)

		w := serve(router, http.MethodPost, "/guests", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"guest_id":6`)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.GuestResponse{}, model.ErrEmailDuplicate)

		w := serve(router, http.MethodPost, "/guests", body)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, router := setupRouter(t)

		w := serve(router, http.MethodPost, "/guests", strings.Replace(body, "mette@example.com", "mette", 1))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetGuests(t *testing.T) {
	t.Run("name, email and status filters", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error) {
				assert.Equal(t, []any{
					gDto.Filter{Field: model.FieldFullName, Operator: gDto.FilterOperatorLike, Value: "hansen", Table: model.TableName},
					gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorLike, Value: "", Table: model.TableName},
					gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: "vip", Table: model.TableName},
				}, filter.Filters)

				return dto.GetGuestsResponse{}, nil
			})

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/guests?full_name=hansen&status=vip", "").Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, router := setupRouter(t)

		assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/guests?status=gold", "").Code)
	})
}

func TestHandler_GetGuestByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().Get(gomock.Any(), int64(42)).Return(dto.GuestResponse{}, model.ErrGuestNotFound)

		assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/guests/42", "").Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, router := setupRouter(t)

		assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/guests/-1", "").Code)
	})
}
