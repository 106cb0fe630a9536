package game

import (
	"context"
	"errors"

	apperrors "github.com/louisbranch/masks/internal/platform/errors"
	"github.com/louisbranch/masks/internal/platform/grpc/pagination"
	grpcmeta "github.com/louisbranch/masks/internal/services/game/api/grpc/metadata"
	"github.com/louisbranch/masks/internal/services/game/content"
	"github.com/louisbranch/masks/internal/services/game/gameplay"
	"github.com/louisbranch/masks/internal/services/game/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var effectLogPageSize = pagination.PageSizeConfig{Default: storage.DefaultEffectLogPageSize, Max: storage.MaxEffectLogPageSize}

// Server implements GameServer over the gameplay service.
type Server struct {
	svc *gameplay.Service
}

var _ GameServer = (*Server)(nil)

// NewServer builds a GameService server.
func NewServer(svc *gameplay.Service) (*Server, error) {
	if svc == nil {
		return nil, errors.New("gameplay service is required")
	}
	return &Server{svc: svc}, nil
}

// handleDomainError converts err to a gRPC status localized for the
// caller's accept-language header.
func handleDomainError(ctx context.Context, err error) error {
	return apperrors.HandleError(err, grpcmeta.LocaleFromContext(ctx))
}

func outcomeResponse(ctx context.Context, out gameplay.Outcome, err error) (*Outcome, error) {
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	resp := outcomeToMessage(out)
	return &resp, nil
}

func (s *Server) CreatePlayer(ctx context.Context, in *CreatePlayerRequest) (*PlayerResponse, error) {
	p, err := s.svc.CreatePlayer(ctx, gameplay.CreatePlayerInput{Username: in.Username, StartingMask: in.StartingMask})
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &PlayerResponse{Player: playerToMessage(p)}, nil
}

func (s *Server) GetPlayer(ctx context.Context, in *PlayerRequest) (*PlayerResponse, error) {
	p, err := s.svc.GetPlayer(ctx, in.PlayerID)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &PlayerResponse{Player: playerToMessage(p)}, nil
}

func (s *Server) GetPlayerByUsername(ctx context.Context, in *GetPlayerByUsernameRequest) (*PlayerResponse, error) {
	p, err := s.svc.GetPlayerByUsername(ctx, in.Username)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &PlayerResponse{Player: playerToMessage(p)}, nil
}

func (s *Server) DeletePlayer(ctx context.Context, in *PlayerRequest) (*Empty, error) {
	if err := s.svc.DeletePlayer(ctx, in.PlayerID); err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &Empty{}, nil
}

func (s *Server) MoveToZone(ctx context.Context, in *MoveToZoneRequest) (*Outcome, error) {
	out, err := s.svc.MoveToZone(ctx, in.PlayerID, in.ZoneID)
	return outcomeResponse(ctx, out, err)
}

func (s *Server) UpdateStats(ctx context.Context, in *UpdateStatsRequest) (*Outcome, error) {
	out, err := s.svc.UpdateStats(ctx, in.PlayerID, gameplay.StatsUpdate{
		Energy:     in.Energy,
		Mood:       in.Mood,
		Time:       in.Time,
		Reputation: in.Reputation,
	})
	return outcomeResponse(ctx, out, err)
}

func (s *Server) GrantItem(ctx context.Context, in *ItemQuantityRequest) (*Outcome, error) {
	out, err := s.svc.GrantItem(ctx, in.PlayerID, in.ItemID, in.Quantity)
	return outcomeResponse(ctx, out, err)
}

func (s *Server) RemoveItem(ctx context.Context, in *ItemQuantityRequest) (*Outcome, error) {
	out, err := s.svc.RemoveItem(ctx, in.PlayerID, in.ItemID, in.Quantity)
	return outcomeResponse(ctx, out, err)
}

func (s *Server) AdjustCorruption(ctx context.Context, in *AdjustCorruptionRequest) (*Outcome, error) {
	out, err := s.svc.AdjustCorruption(ctx, in.PlayerID, in.MaskID, in.Delta)
	return outcomeResponse(ctx, out, err)
}

func (s *Server) ListAvailableActions(ctx context.Context, in *ZoneRequest) (*ListAvailableActionsResponse, error) {
	actions, err := s.svc.ListAvailableActions(ctx, in.PlayerID, in.ZoneID)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	resp := &ListAvailableActionsResponse{Actions: make([]AvailableAction, 0, len(actions))}
	for _, a := range actions {
		resp.Actions = append(resp.Actions, AvailableAction{Action: a.Action, FitsPeriod: a.FitsPeriod})
	}
	return resp, nil
}

func (s *Server) ExecuteAction(ctx context.Context, in *ExecuteActionRequest) (*ExecuteActionResponse, error) {
	out, err := s.svc.ExecuteAction(ctx, in.PlayerID, in.ActionID)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &ExecuteActionResponse{
		Outcome:             outcomeToMessage(out.Outcome),
		ActionID:            out.Action.ID,
		TriggeredCorruption: out.TriggeredCorruption,
	}, nil
}

func (s *Server) RollEvent(ctx context.Context, in *ZoneRequest) (*RollEventResponse, error) {
	event, found, err := s.svc.RollEvent(ctx, in.PlayerID, in.ZoneID)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	if !found {
		return &RollEventResponse{}, nil
	}
	return &RollEventResponse{Found: true, Event: &event}, nil
}

func (s *Server) MakeEventChoice(ctx context.Context, in *MakeEventChoiceRequest) (*MakeEventChoiceResponse, error) {
	out, err := s.svc.MakeEventChoice(ctx, in.PlayerID, in.EventID, in.ChoiceID)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &MakeEventChoiceResponse{
		Outcome:  outcomeToMessage(out.Outcome),
		EventID:  out.Event.ID,
		ChoiceID: out.Choice.ID,
	}, nil
}

func (s *Server) UseItem(ctx context.Context, in *UseItemRequest) (*UseItemResponse, error) {
	out, err := s.svc.UseItem(ctx, in.PlayerID, in.ItemID)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &UseItemResponse{Outcome: outcomeToMessage(out.Outcome), ItemID: out.Item.ID, Consumed: out.Consumed}, nil
}

func (s *Server) SubmitMinigameResult(ctx context.Context, in *SubmitMinigameResultRequest) (*SubmitMinigameResultResponse, error) {
	out, err := s.svc.SubmitMinigameResult(ctx, in.PlayerID, in.MinigameID, in.Score)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &SubmitMinigameResultResponse{
		Outcome:    outcomeToMessage(out.Outcome),
		MinigameID: out.Minigame.ID,
		FinalScore: out.FinalScore,
		Completed:  out.Completed,
		Rewards:    out.Rewards,
	}, nil
}

func (s *Server) EquipMask(ctx context.Context, in *MaskRequest) (*EquipMaskResponse, error) {
	out, err := s.svc.EquipMask(ctx, in.PlayerID, in.MaskID)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &EquipMaskResponse{Outcome: outcomeToMessage(out.Outcome), Equipped: out.Equipped}, nil
}

func (s *Server) UnequipMask(ctx context.Context, in *PlayerRequest) (*Outcome, error) {
	out, err := s.svc.UnequipMask(ctx, in.PlayerID)
	return outcomeResponse(ctx, out, err)
}

func (s *Server) UnlockMask(ctx context.Context, in *MaskRequest) (*UnlockMaskResponse, error) {
	out, err := s.svc.UnlockMask(ctx, in.PlayerID, in.MaskID)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &UnlockMaskResponse{Outcome: outcomeToMessage(out.Outcome), Unlocked: out.Unlocked, Missing: out.Missing}, nil
}

func (s *Server) ListMasks(ctx context.Context, in *PlayerRequest) (*ListMasksResponse, error) {
	list, err := s.svc.ListMasks(ctx, in.PlayerID)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return maskListToMessage(list), nil
}

func (s *Server) GetNPCReaction(ctx context.Context, in *GetNPCReactionRequest) (*GetNPCReactionResponse, error) {
	reaction, err := s.svc.NPCReaction(in.NPCID, in.MaskID)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &GetNPCReactionResponse{Reaction: reaction}, nil
}

func (s *Server) ListNPCsAt(ctx context.Context, in *ListNPCsAtRequest) (*ListNPCsResponse, error) {
	npcs, err := s.svc.NPCsAt(in.Time, in.ZoneID)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &ListNPCsResponse{NPCs: nonNil(npcs)}, nil
}

func (s *Server) GetRelationship(ctx context.Context, in *GetRelationshipRequest) (*GetRelationshipResponse, error) {
	affinity, err := s.svc.Relationship(ctx, in.PlayerID, in.NPCID)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &GetRelationshipResponse{NPCID: in.NPCID, Affinity: affinity}, nil
}

func (s *Server) GetDayRecap(ctx context.Context, in *GetDayRecapRequest) (*GetDayRecapResponse, error) {
	r, err := s.svc.DayRecap(ctx, in.PlayerID, in.Day)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &GetDayRecapResponse{Recap: r}, nil
}

func (s *Server) ListEffectLog(ctx context.Context, in *ListEffectLogRequest) (*ListEffectLogResponse, error) {
	afterSeq, err := pagination.DecodeSeqToken(in.PageToken)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	page, err := s.svc.ListEffectLog(ctx, storage.ListEffectLogRequest{
		PlayerID: in.PlayerID,
		Day:      in.Day,
		AfterSeq: afterSeq,
		PageSize: pagination.ClampPageSize(in.PageSize, effectLogPageSize),
	})
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &ListEffectLogResponse{
		Entries:       nonNil(page.Entries),
		NextPageToken: pagination.EncodeSeqToken(page.NextAfterSeq),
	}, nil
}

func (s *Server) ListZones(_ context.Context, in *ListZonesRequest) (*ListZonesResponse, error) {
	return &ListZonesResponse{Zones: nonNil(s.svc.ListZones(in.Type))}, nil
}

func (s *Server) GetZone(ctx context.Context, in *GetZoneRequest) (*GetZoneResponse, error) {
	detail, err := s.svc.GetZone(in.ZoneID, in.Time)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &GetZoneResponse{Zone: detail}, nil
}

func (s *Server) ListNPCs(_ context.Context, in *ListNPCsRequest) (*ListNPCsResponse, error) {
	npcs := s.svc.ListNPCs(content.NPCFilter{Role: in.Role, Zone: in.ZoneID, Trait: in.Trait})
	return &ListNPCsResponse{NPCs: nonNil(npcs)}, nil
}

func (s *Server) ListItems(_ context.Context, in *ListItemsRequest) (*ListItemsResponse, error) {
	return &ListItemsResponse{Items: nonNil(s.svc.ListItems(in.Type))}, nil
}

func (s *Server) ListMinigames(_ context.Context, in *ListMinigamesRequest) (*ListMinigamesResponse, error) {
	return &ListMinigamesResponse{Minigames: nonNil(s.svc.ListMinigames(in.ClassID))}, nil
}

func (s *Server) ListActions(_ context.Context, in *ListCatalogActionsRequest) (*ListActionsResponse, error) {
	actions := s.svc.ListActions(content.ActionFilter{Zone: in.ZoneID, RiskLevel: in.RiskLevel})
	return &ListActionsResponse{Actions: nonNil(actions)}, nil
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
