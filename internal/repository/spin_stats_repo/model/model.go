package model

// SpinStats Агрегированная статистика спинов процесса
type SpinStats struct {
	TotalSpins  int     // Сколько всего спинов сделано
	TotalWins   int     // Сколько из них выигрышных
	TotalBet    float64 // Сумма всех списаний
	TotalPayout float64 // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPayout/TotalBet)*100

	SpinWindow []SpinResult // Окно последних спинов для анализа
	WindowRTP  float64      // RTP в окне последних спинов
	WindowSize int          // Размер окна
}

// Результат спина для окна
type SpinResult struct {
	Bet    float64
	Payout float64
	RTP    float64
}
