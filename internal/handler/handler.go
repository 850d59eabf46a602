package handlers

import (
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"linxblog/internal/apperror"
	"linxblog/internal/middleware"
	"linxblog/internal/service"
)

type Handlers struct {
	UserService   service.UserService
	AuthService   service.AuthService
	PostService   service.PostService
	TablesService service.TablesService
	Log           *slog.Logger
	Validate      *validator.Validate
}

func NewHandlers(services *service.Service, log *slog.Logger) *Handlers {
	return &Handlers{
		UserService:   services.User,
		AuthService:   services.Auth,
		PostService:   services.Post,
		TablesService: services.Tables,
		Log:           log,
		Validate:      NewValidator(),
	}
}

// NewValidator reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// requireCaller answers 401 when the request carries no authenticated identity.
func requireCaller(w http.ResponseWriter, r *http.Request) (middleware.Identity, bool) {
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		apperror.Write(w, apperror.Unauthorized("Unauthorized"))
	}
	return caller, ok
}
