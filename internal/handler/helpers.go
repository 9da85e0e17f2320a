package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"edumodules/internal/auth"
	"edumodules/internal/authz"
	apperrors "edumodules/internal/errors"
	"edumodules/internal/service"
)

// currentActor returns the actor resolved by the auth middleware.
func currentActor(c echo.Context) (authz.Actor, error) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return authz.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return actor, nil
}

// pathID parses the numeric id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// listParams reads page, page_size and search query parameters.
func listParams(c echo.Context) service.ListParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	return service.ListParams{
		Page:     page,
		PageSize: size,
		Search:   c.QueryParam("search"),
	}
}

// domainError converts a domain error to an echo HTTP error.
func domainError(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
