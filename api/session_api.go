package api

import (
	"context"
	"encoding/json"
	"log"

	"github.com/saeidalz13/naval-battle/db/sqlc"
	cerr "github.com/saeidalz13/naval-battle/internal/error"
	mb "github.com/saeidalz13/naval-battle/models/battleship"
	mc "github.com/saeidalz13/naval-battle/models/connection"
)

// wsMoveSource is the human side: it blocks on the connection until the
// client sends an attack.
type wsMoveSource struct {
	session *mc.Session
}

var _ mb.MoveSource = (*wsMoveSource)(nil)

func (wms *wsMoveSource) NextTarget() (mb.Coordinates, error) {
	for {
		code, payload, err := wms.session.ReadSignal()
		if err != nil {
			return mb.Coordinates{}, err
		}

		switch code {
		case mc.CodeAttack:
			var req mc.Message[mc.ReqAttack]
			if err := json.Unmarshal(payload, &req); err != nil {
				msg := mc.NewErrorMessage(mc.CodeAttack, err.Error(), cerr.ConstErrAttackFailed)
				if werr := wms.session.WriteJSON(msg); werr != nil {
					return mb.Coordinates{}, werr
				}
				continue
			}
			return req.Payload.Coordinates(), nil

		default:
			msg := mc.NewErrorMessage(mc.CodeInvalidSignal, "", "invalid code in the incoming payload")
			if err := wms.session.WriteJSON(msg); err != nil {
				return mb.Coordinates{}, err
			}
		}
	}
}

func (s *Server) runSession(session *mc.Session, analytics *sqlc.AnalyticsManager) {
	defer func() {
		if err := session.Close(); err != nil {
			log.Println(err)
		}
		log.Printf("connection closed\tsession: %s\tage: %s\n", session.Id(), session.Age())
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: session.Id()})
	if err := session.WriteJSON(resp); err != nil {
		log.Println(err)
		return
	}

	rng := s.newSessionRand()
	game, err := s.GameManager.CreateGame(
		rng,
		s.fleetConfig,
		&wsMoveSource{session: session},
		mb.NewRandomMoveSource(rng, s.fleetConfig.GridSize),
	)
	if err != nil {
		log.Println(err)
		_ = session.WriteJSON(mc.NewErrorMessage(mc.CodeGameStarted, err.Error(), "failed to create game"))
		return
	}
	defer s.GameManager.TerminateGame(game.Uuid())

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	if err := analytics.IncrementGamesCreatedCount(ctx); err != nil {
		// analytics never stop a game
		log.Println(err)
	}
	cancel()

	human := game.Player(mb.SideA)
	computer := game.Player(mb.SideB)

	started := mc.NewMessage[mc.RespGameStarted](mc.CodeGameStarted)
	started.AddPayload(mc.RespGameStarted{
		GameUuid:     game.Uuid(),
		GridSize:     human.Board().Size(),
		OwnGrid:      mc.NewGridView(human.Board().Grid()),
		OpponentGrid: mc.NewGridView(computer.Board().View()),
	})
	if err := session.WriteJSON(started); err != nil {
		log.Println(err)
		return
	}

	// Write failures in hooks are only logged; a broken connection
	// surfaces on the next read and aborts the game.
	game.OnAwaiting = func(side mb.Side) {
		if side != mb.SideA {
			return
		}
		msg := mc.NewMessage[mc.RespAwaitingMove](mc.CodeAwaitingMove)
		msg.AddPayload(mc.RespAwaitingMove{Side: side.String()})
		if err := session.WriteJSON(msg); err != nil {
			log.Println(err)
		}
	}
	game.OnRejected = func(side mb.Side, target mb.Coordinates, err error) {
		if side != mb.SideA {
			return
		}
		msg := mc.NewErrorMessage(mc.CodeAttack, err.Error(), cerr.ConstErrAttackFailed)
		if werr := session.WriteJSON(msg); werr != nil {
			log.Println(werr)
		}
	}
	game.OnShot = func(report mb.ShotReport) {
		msg := mc.NewMessage[mc.RespShotResult](mc.CodeShotResult)
		msg.AddPayload(mc.RespShotResult{
			Attacker:     report.Attacker.String(),
			X:            report.Target.X,
			Y:            report.Target.Y,
			Result:       report.Result.String(),
			SunkCoords:   report.SunkCoords,
			IsTurn:       report.State == mb.GameStateAwaitingSideA,
			OwnGrid:      mc.NewGridView(human.Board().Grid()),
			OpponentGrid: mc.NewGridView(computer.Board().View()),
		})
		if err := session.WriteJSON(msg); err != nil {
			log.Println(err)
		}
	}

	winner, err := game.Play()
	if err != nil {
		return
	}

	ctx, cancel = context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	if err := analytics.IncrementWinsCount(ctx, winner == mb.SideA); err != nil {
		log.Println(err)
	}
	cancel()

	status := mc.PlayerMatchStatusLost
	if winner == mb.SideA {
		status = mc.PlayerMatchStatusWon
	}
	end := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
	end.AddPayload(mc.RespEndGame{Winner: winner.String(), PlayerMatchStatus: status})
	if err := session.WriteJSON(end); err != nil {
		log.Println(err)
	}
}
