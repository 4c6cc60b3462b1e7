package converter

import (
	dto "slot_backend/internal/api/dto/slot"
	"slot_backend/internal/game/machine"
	"slot_backend/internal/model"
	statsModel "slot_backend/internal/repository/spin_stats_repo/model"
)

func ToSpinRequest(req dto.SpinRequest) model.SpinRequest {
	return model.SpinRequest{
		ForceWin: req.ForceWin,
	}
}

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		Symbols: res.Symbols,
		Win:     res.Win,
		Payout:  res.Payout,
		Cost:    res.Cost,
		Balance: res.Balance,
	}
}

func ToDataResponse(data model.Data) dto.DataResponse {
	return dto.DataResponse{
		Balance:  data.Balance,
		Spinning: data.Spinning,
	}
}

func ToStatsResponse(stats statsModel.SpinStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalSpins:  stats.TotalSpins,
		TotalWins:   stats.TotalWins,
		TotalBet:    stats.TotalBet,
		TotalPayout: stats.TotalPayout,
		CurrentRTP:  stats.CurrentRTP,
		WindowRTP:   stats.WindowRTP,
	}
}

func ToFrameResponse(view machine.View) dto.FrameResponse {
	frame := dto.FrameResponse{
		Spinning: view.Spinning,
	}
	for _, r := range view.Reels {
		rf := dto.ReelFrame{
			Position: r.Position,
			Slots:    make([]dto.SlotFrame, 0, len(r.Slots)),
		}
		for _, s := range r.Slots {
			rf.Slots = append(rf.Slots, dto.SlotFrame{
				Offset: s.Offset,
				Symbol: s.Symbol,
			})
		}
		frame.Reels = append(frame.Reels, rf)
	}
	return frame
}
