package converter

import (
	dto "slot_backend/internal/api/dto/auth"
	"slot_backend/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest, startBalance int) *model.User {
	return &model.User{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
		Balance:  startBalance,
	}
}
