package model

import "errors"

var (
	// ErrInsufficientFunds - баланса не хватает на стоимость спина.
	// Запрос отклоняется локально, состояние не меняется, повторов нет
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSpinInProgress - запрос спина, пока предыдущий не завершился.
	// Для вызывающего это no-op: баланс не списывается, исход не выбирается
	ErrSpinInProgress = errors.New("spin already in progress")
)

// SpinRequest Запрос одного спина
type SpinRequest struct {
	// ForceWin - демо-режим с гарантированным выигрышем:
	// один и тот же символ на все барабаны плюс принудительное выравнивание
	ForceWin bool
}

// SpinResult Итог одного завершенного спина
type SpinResult struct {
	Symbols []string // Символы на выигрышной линии, по одному с барабана
	Win     bool     // Выигрыш: все символы линии совпали
	Payout  int      // Начислено за выигрыш (0 при проигрыше)
	Cost    int      // Списано за спин
	Balance int      // Баланс после спина
}

// Data Текущее состояние игрока
type Data struct {
	Balance  int
	Spinning bool
}
