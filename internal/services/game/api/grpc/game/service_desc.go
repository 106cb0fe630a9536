package game

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "masks.game.v1.GameService"

// GameServer is the server API of GameService.
type GameServer interface {
	CreatePlayer(context.Context, *CreatePlayerRequest) (*PlayerResponse, error)
	GetPlayer(context.Context, *PlayerRequest) (*PlayerResponse, error)
	GetPlayerByUsername(context.Context, *GetPlayerByUsernameRequest) (*PlayerResponse, error)
	DeletePlayer(context.Context, *PlayerRequest) (*Empty, error)
	MoveToZone(context.Context, *MoveToZoneRequest) (*Outcome, error)
	UpdateStats(context.Context, *UpdateStatsRequest) (*Outcome, error)
	GrantItem(context.Context, *ItemQuantityRequest) (*Outcome, error)
	RemoveItem(context.Context, *ItemQuantityRequest) (*Outcome, error)
	AdjustCorruption(context.Context, *AdjustCorruptionRequest) (*Outcome, error)
	ListAvailableActions(context.Context, *ZoneRequest) (*ListAvailableActionsResponse, error)
	ExecuteAction(context.Context, *ExecuteActionRequest) (*ExecuteActionResponse, error)
	RollEvent(context.Context, *ZoneRequest) (*RollEventResponse, error)
	MakeEventChoice(context.Context, *MakeEventChoiceRequest) (*MakeEventChoiceResponse, error)
	UseItem(context.Context, *UseItemRequest) (*UseItemResponse, error)
	SubmitMinigameResult(context.Context, *SubmitMinigameResultRequest) (*SubmitMinigameResultResponse, error)
	EquipMask(context.Context, *MaskRequest) (*EquipMaskResponse, error)
	UnequipMask(context.Context, *PlayerRequest) (*Outcome, error)
	UnlockMask(context.Context, *MaskRequest) (*UnlockMaskResponse, error)
	ListMasks(context.Context, *PlayerRequest) (*ListMasksResponse, error)
	GetNPCReaction(context.Context, *GetNPCReactionRequest) (*GetNPCReactionResponse, error)
	ListNPCsAt(context.Context, *ListNPCsAtRequest) (*ListNPCsResponse, error)
	GetRelationship(context.Context, *GetRelationshipRequest) (*GetRelationshipResponse, error)
	GetDayRecap(context.Context, *GetDayRecapRequest) (*GetDayRecapResponse, error)
	ListEffectLog(context.Context, *ListEffectLogRequest) (*ListEffectLogResponse, error)
	ListZones(context.Context, *ListZonesRequest) (*ListZonesResponse, error)
	GetZone(context.Context, *GetZoneRequest) (*GetZoneResponse, error)
	ListNPCs(context.Context, *ListNPCsRequest) (*ListNPCsResponse, error)
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	ListMinigames(context.Context, *ListMinigamesRequest) (*ListMinigamesResponse, error)
	ListActions(context.Context, *ListCatalogActionsRequest) (*ListActionsResponse, error)
}

// FullMethod returns the full gRPC method name of a GameService method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// RegisterGameServer registers srv on s.
func RegisterGameServer(s grpc.ServiceRegistrar, srv GameServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// ServiceDesc describes GameService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreatePlayer", GameServer.CreatePlayer),
		unary("GetPlayer", GameServer.GetPlayer),
		unary("GetPlayerByUsername", GameServer.GetPlayerByUsername),
		unary("DeletePlayer", GameServer.DeletePlayer),
		unary("MoveToZone", GameServer.MoveToZone),
		unary("UpdateStats", GameServer.UpdateStats),
		unary("GrantItem", GameServer.GrantItem),
		unary("RemoveItem", GameServer.RemoveItem),
		unary("AdjustCorruption", GameServer.AdjustCorruption),
		unary("ListAvailableActions", GameServer.ListAvailableActions),
		unary("ExecuteAction", GameServer.ExecuteAction),
		unary("RollEvent", GameServer.RollEvent),
		unary("MakeEventChoice", GameServer.MakeEventChoice),
		unary("UseItem", GameServer.UseItem),
		unary("SubmitMinigameResult", GameServer.SubmitMinigameResult),
		unary("EquipMask", GameServer.EquipMask),
		unary("UnequipMask", GameServer.UnequipMask),
		unary("UnlockMask", GameServer.UnlockMask),
		unary("ListMasks", GameServer.ListMasks),
		unary("GetNPCReaction", GameServer.GetNPCReaction),
		unary("ListNPCsAt", GameServer.ListNPCsAt),
		unary("GetRelationship", GameServer.GetRelationship),
		unary("GetDayRecap", GameServer.GetDayRecap),
		unary("ListEffectLog", GameServer.ListEffectLog),
		unary("ListZones", GameServer.ListZones),
		unary("GetZone", GameServer.GetZone),
		unary("ListNPCs", GameServer.ListNPCs),
		unary("ListItems", GameServer.ListItems),
		unary("ListMinigames", GameServer.ListMinigames),
		unary("ListActions", GameServer.ListActions),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "masks/game/v1/game.json",
}

// unary adapts a GameServer method to a grpc.MethodDesc.
func unary[Req, Resp any](method string, call func(GameServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := FullMethod(method)
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(GameServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
