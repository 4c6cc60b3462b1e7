package slot

import (
	"errors"
	"log"
	"net/http"

	dto "slot_backend/internal/api/dto/slot"
	"slot_backend/internal/converter"
	"slot_backend/internal/model"
	"slot_backend/internal/service"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv: deps.Serv,
	}
}

// Spin запускает прокрутку барабанов и отдаёт итог после полной остановки
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSpinRequest(requestBody))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInsufficientFunds):
			http.Error(w, "insufficient funds", http.StatusBadRequest)
		case errors.Is(err, model.ErrSpinInProgress):
			http.Error(w, "spin already in progress", http.StatusConflict)
		default:
			log.Println("Spin error:", err)
			http.Error(w, "spin failed", http.StatusInternalServerError)
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

// Deposit пополняет баланс пользователя и возвращает обновлённые данные
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.serv.Deposit(r.Context(), requestBody.Amount); err != nil {
		log.Println("Deposit error:", err)
		http.Error(w, "deposit failed", http.StatusBadRequest)
		return
	}

	data, err := h.serv.CheckData(r.Context())
	if err != nil {
		log.Println("Deposit error:", err)
		http.Error(w, "deposit failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

// CheckData отдаёт баланс и признак активной прокрутки
func (h *Handler) CheckData(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.CheckData(r.Context())
	if err != nil {
		log.Println("CheckData error:", err)
		http.Error(w, "check data failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

// Stats отдаёт агрегированную статистику прокруток
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}
