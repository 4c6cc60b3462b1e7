package slot

type SpinRequest struct {
	ForceWin bool `json:"force_win"` // Демо-режим с гарантированным выигрышем
}

type SpinResponse struct {
	Symbols []string `json:"symbols"` // Символы на выигрышной линии
	Win     bool     `json:"win"`     // Выигрыш
	Payout  int      `json:"payout"`  // Начислено за выигрыш
	Cost    int      `json:"cost"`    // Списано за спин
	Balance int      `json:"balance"` // Баланс после
}

type DepositRequest struct {
	Amount int `json:"amount"` // Сумма депозита
}

type DataResponse struct {
	Balance  int  `json:"balance"`  // Баланс пользователя
	Spinning bool `json:"spinning"` // Идет ли спин
}

type StatsResponse struct {
	TotalSpins  int     `json:"total_spins"`  // Всего спинов
	TotalWins   int     `json:"total_wins"`   // Из них выигрышных
	TotalBet    float64 `json:"total_bet"`    // Сумма списаний
	TotalPayout float64 `json:"total_payout"` // Сумма выплат
	CurrentRTP  float64 `json:"current_rtp"`  // RTP за все время
	WindowRTP   float64 `json:"window_rtp"`   // RTP в окне последних спинов
}

// SlotFrame Одна ячейка ленты в кадре стрима
type SlotFrame struct {
	Offset float64 `json:"offset"` // Экранное смещение
	Symbol string  `json:"symbol"` // Идентификатор символа
}

// ReelFrame Один барабан в кадре стрима
type ReelFrame struct {
	Position float64     `json:"position"` // Позиция прокрутки
	Slots    []SlotFrame `json:"slots"`    // Ячейки ленты
}

// FrameResponse Кадр состояния автомата для рендер-клиента
type FrameResponse struct {
	Spinning bool        `json:"spinning"`
	Reels    []ReelFrame `json:"reels"`
}
