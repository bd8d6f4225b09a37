package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/files-manager/internal/apierrors"
	"github.com/dtroode/files-manager/internal/model"
	"github.com/dtroode/files-manager/internal/testutil"
)

func TestAuth_Connect(t *testing.T) {
	t.Parallel()

	svc := newAuthServiceMock(t)
	header := "Basic Ym9iQGR5bGFuLmNvbTp0b3RvMTIzNCE="
	svc.On("Authenticate", mock.Anything, header).Return(model.Session{Token: "tok", UserID: uuid.New()}, nil)

	h := NewAuth(svc, testutil.MakeNoopLogger())
	rec := serve(http.MethodGet, "/connect", "/connect", "", uuid.Nil, h.Connect, map[string]string{"Authorization": header})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"tok"}`, rec.Body.String())
}

func TestAuth_Connect_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "malformed", err: apierrors.NewErrMalformedCredentials()},
		{name: "invalid", err: apierrors.NewErrInvalidCredentials()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newAuthServiceMock(t)
			svc.On("Authenticate", mock.Anything, "").Return(model.Session{}, tt.err)

			h := NewAuth(svc, testutil.MakeNoopLogger())
			rec := serve(http.MethodGet, "/connect", "/connect", "", uuid.Nil, h.Connect, nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestAuth_Disconnect(t *testing.T) {
	t.Parallel()

	svc := newAuthServiceMock(t)
	svc.On("Disconnect", mock.Anything, "tok").Return(nil)

	h := NewAuth(svc, testutil.MakeNoopLogger())
	rec := serve(http.MethodGet, "/disconnect", "/disconnect", "", uuid.New(), h.Disconnect, map[string]string{"X-Token": "tok"})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAuth_Disconnect_UnknownToken(t *testing.T) {
	t.Parallel()

	svc := newAuthServiceMock(t)
	svc.On("Disconnect", mock.Anything, "gone").Return(apierrors.NewErrUnauthenticated())

	h := NewAuth(svc, testutil.MakeNoopLogger())
	rec := serve(http.MethodGet, "/disconnect", "/disconnect", "", uuid.New(), h.Disconnect, map[string]string{"X-Token": "gone"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}
