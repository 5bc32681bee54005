package controller

import (
	"bytes"
	"encoding/json"
	"estudo_backend/internal/model"
	"estudo_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// flexibleID accepts an id sent either as a JSON string or a JSON number.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

// parseIDParam reads a positive numeric path parameter, writing a 400 on failure.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func queryInt(ctx *gin.Context, name string, def int) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return v, true
}

// authorizeUser lets students act only on themselves; professors may act on anyone.
func authorizeUser(ctx *gin.Context, userID uint) bool {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return false
	}
	if claims.UserType != model.Professor && claims.UserID != userID {
		util.Forbidden(ctx)
		return false
	}
	return true
}
