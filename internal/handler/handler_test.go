package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"building/internal/model"
	"building/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) List(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, user *model.User) (*model.UserInsertResult, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserInsertResult), args.Error(1)
}

func (m *MockUserService) CheckAdmin(ctx context.Context, email string) (*model.AdminStatus, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminStatus), args.Error(1)
}

func (m *MockUserService) MakeMember(ctx context.Context, email string) (*model.UpdateResult, error) {
	return m.update(m.Called(ctx, email))
}

func (m *MockUserService) MakeAdmin(ctx context.Context, id string) (*model.UpdateResult, error) {
	return m.update(m.Called(ctx, id))
}

func (m *MockUserService) DemoteToUser(ctx context.Context, id string) (*model.UpdateResult, error) {
	return m.update(m.Called(ctx, id))
}

func (m *MockUserService) update(args mock.Arguments) (*model.UpdateResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UpdateResult), args.Error(1)
}

type MockPaymentService struct{ mock.Mock }

func (m *MockPaymentService) CreateIntent(ctx context.Context, rent float64) (*model.PaymentIntentResponse, error) {
	args := m.Called(ctx, rent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentIntentResponse), args.Error(1)
}

func (m *MockPaymentService) Record(ctx context.Context, p *model.Payment) (*model.PaymentPostResponse, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentPostResponse), args.Error(1)
}

func (m *MockPaymentService) History(ctx context.Context, email string) ([]*model.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Payment), args.Error(1)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func userRouter(svc UserService) *gin.Engine {
	h := NewUserHandler(svc, newNoopLogger())
	r := gin.New()
	r.GET("/users", h.List)
	r.POST("/users", h.Create)
	r.GET("/users/admin/:email", h.CheckAdmin)
	r.PATCH("/users/role/:email", h.MakeMember)
	r.PATCH("/users/admin/:id", h.MakeAdmin)
	r.PATCH("/member/:id", h.DemoteToUser)
	return r
}

func TestUserHandler_Create(t *testing.T) {
	id := primitive.NewObjectID()
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "created",
			body: `{"email":"a@x.com","name":"Ann"}`,
			setupMock: func(m *MockUserService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Email == "a@x.com" && u.Name == "Ann"
				})).Return(&model.UserInsertResult{Acknowledged: true, InsertedID: &id}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   fmt.Sprintf(`{"acknowledged":true,"insertedId":"%s"}`, id.Hex()),
		},
		{
			name: "duplicate email",
			body: `{"email":"a@x.com"}`,
			setupMock: func(m *MockUserService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(&model.UserInsertResult{Message: model.MsgUserExists}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"user already exists","insertedId":null}`,
		},
		{
			name:           "missing email",
			body:           `{"name":"Ann"}`,
			setupMock:      func(*MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"Invalid request body","details":"field Email is required"}`,
		},
		{
			name:           "unknown role",
			body:           `{"email":"a@x.com","role":"root"}`,
			setupMock:      func(*MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"Invalid request body","details":"field Role must be one of [user member admin]"}`,
		},
		{
			name: "store failure",
			body: `{"email":"a@x.com"}`,
			setupMock: func(m *MockUserService) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("socket closed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			tt.setupMock(svc)

			w := perform(userRouter(svc), http.MethodPost, "/users", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_MalformedJSON(t *testing.T) {
	w := perform(userRouter(new(MockUserService)), http.MethodPost, "/users", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_CheckAdmin(t *testing.T) {
	svc := new(MockUserService)
	svc.On("CheckAdmin", mock.Anything, "boss@x.com").Return(&model.AdminStatus{Admin: true}, nil)
	svc.On("CheckAdmin", mock.Anything, "bad").Return(nil, fmt.Errorf("%w: invalid email format", service.ErrInvalidInput))

	w := perform(userRouter(svc), http.MethodGet, "/users/admin/boss@x.com", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":true}`, w.Body.String())

	w = perform(userRouter(svc), http.MethodGet, "/users/admin/bad", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_RoleUpdates(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	res := &model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}

	svc := new(MockUserService)
	svc.On("MakeMember", mock.Anything, "a@x.com").Return(res, nil)
	svc.On("MakeAdmin", mock.Anything, id).Return(res, nil)
	svc.On("DemoteToUser", mock.Anything, id).Return(nil, fmt.Errorf("%w: no document matched", service.ErrNotFound))
	r := userRouter(svc)

	w := perform(r, http.MethodPatch, "/users/role/a@x.com", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1,"upsertedCount":0,"upsertedId":null}`, w.Body.String())

	w = perform(r, http.MethodPatch, "/users/admin/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(r, http.MethodPatch, "/member/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertExpectations(t)
}

func TestUserHandler_List(t *testing.T) {
	svc := new(MockUserService)
	svc.On("List", mock.Anything).Return([]*model.User{}, nil)

	w := perform(userRouter(svc), http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func paymentRouter(svc PaymentService) *gin.Engine {
	h := NewPaymentHandler(svc, newNoopLogger())
	r := gin.New()
	r.POST("/create-payment-intent", h.CreateIntent)
	r.POST("/payments", h.Record)
	r.GET("/payments/:email", h.History)
	return r
}

func TestPaymentHandler_CreateIntent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockPaymentService)
		svc.On("CreateIntent", mock.Anything, 25.0).Return(&model.PaymentIntentResponse{ClientSecret: "pi_secret"}, nil)

		w := perform(paymentRouter(svc), http.MethodPost, "/create-payment-intent", `{"rent":25}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"clientSecret":"pi_secret"}`, w.Body.String())
	})

	t.Run("missing rent", func(t *testing.T) {
		w := perform(paymentRouter(new(MockPaymentService)), http.MethodPost, "/create-payment-intent", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("gateway down", func(t *testing.T) {
		svc := new(MockPaymentService)
		svc.On("CreateIntent", mock.Anything, 10.0).Return(nil, fmt.Errorf("%w: timeout", service.ErrUpstream))

		w := perform(paymentRouter(svc), http.MethodPost, "/create-payment-intent", `{"rent":10}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestPaymentHandler_RecordAndHistory(t *testing.T) {
	id := primitive.NewObjectID()
	svc := new(MockPaymentService)
	svc.On("Record", mock.Anything, mock.MatchedBy(func(p *model.Payment) bool {
		return p.Email == "t@x.com" && p.Rent == 25 && p.TransactionID == "pi_1"
	})).Return(&model.PaymentPostResponse{PaymentPost: model.NewInsertResult(id)}, nil)
	svc.On("History", mock.Anything, "t@x.com").Return([]*model.Payment{{ID: id, Email: "t@x.com", Rent: 25}}, nil)
	r := paymentRouter(svc)

	w := perform(r, http.MethodPost, "/payments", `{"email":"t@x.com","rent":25,"transactionId":"pi_1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"paymentPost":{"acknowledged":true,"insertedId":"%s"}}`, id.Hex()), w.Body.String())

	w = perform(r, http.MethodGet, "/payments/t@x.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	var history []model.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, id, history[0].ID)

	w = perform(r, http.MethodPost, "/payments", `{"rent":25}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthHandler(t *testing.T) {
	r := gin.New()
	up := NewHealthHandler(stubPinger{})
	down := NewHealthHandler(stubPinger{err: errors.New("no reachable servers")})
	r.GET("/", up.Root)
	r.GET("/health", up.Health)
	r.GET("/health-down", down.Health)
	r.GET("/version", up.Version)

	w := perform(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, LivenessMessage, w.Body.String())

	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, perform(r, http.MethodGet, "/health-down", "").Code)

	w = perform(r, http.MethodGet, "/version", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"service":"building-management"`)
}
