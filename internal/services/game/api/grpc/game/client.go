package game

import (
	"context"

	platformgrpc "github.com/louisbranch/masks/internal/platform/grpc"
	"google.golang.org/grpc"
)

// Client calls GameService over the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps a connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, c *Client, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(platformgrpc.JSONCodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePlayer(ctx context.Context, in *CreatePlayerRequest, opts ...grpc.CallOption) (*PlayerResponse, error) {
	return invoke[CreatePlayerRequest, PlayerResponse](ctx, c, "CreatePlayer", in, opts)
}

func (c *Client) GetPlayer(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*PlayerResponse, error) {
	return invoke[PlayerRequest, PlayerResponse](ctx, c, "GetPlayer", in, opts)
}

func (c *Client) GetPlayerByUsername(ctx context.Context, in *GetPlayerByUsernameRequest, opts ...grpc.CallOption) (*PlayerResponse, error) {
	return invoke[GetPlayerByUsernameRequest, PlayerResponse](ctx, c, "GetPlayerByUsername", in, opts)
}

func (c *Client) DeletePlayer(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[PlayerRequest, Empty](ctx, c, "DeletePlayer", in, opts)
}

func (c *Client) MoveToZone(ctx context.Context, in *MoveToZoneRequest, opts ...grpc.CallOption) (*Outcome, error) {
	return invoke[MoveToZoneRequest, Outcome](ctx, c, "MoveToZone", in, opts)
}

func (c *Client) UpdateStats(ctx context.Context, in *UpdateStatsRequest, opts ...grpc.CallOption) (*Outcome, error) {
	return invoke[UpdateStatsRequest, Outcome](ctx, c, "UpdateStats", in, opts)
}

func (c *Client) GrantItem(ctx context.Context, in *ItemQuantityRequest, opts ...grpc.CallOption) (*Outcome, error) {
	return invoke[ItemQuantityRequest, Outcome](ctx, c, "GrantItem", in, opts)
}

func (c *Client) RemoveItem(ctx context.Context, in *ItemQuantityRequest, opts ...grpc.CallOption) (*Outcome, error) {
	return invoke[ItemQuantityRequest, Outcome](ctx, c, "RemoveItem", in, opts)
}

func (c *Client) AdjustCorruption(ctx context.Context, in *AdjustCorruptionRequest, opts ...grpc.CallOption) (*Outcome, error) {
	return invoke[AdjustCorruptionRequest, Outcome](ctx, c, "AdjustCorruption", in, opts)
}

func (c *Client) ListAvailableActions(ctx context.Context, in *ZoneRequest, opts ...grpc.CallOption) (*ListAvailableActionsResponse, error) {
	return invoke[ZoneRequest, ListAvailableActionsResponse](ctx, c, "ListAvailableActions", in, opts)
}

func (c *Client) ExecuteAction(ctx context.Context, in *ExecuteActionRequest, opts ...grpc.CallOption) (*ExecuteActionResponse, error) {
	return invoke[ExecuteActionRequest, ExecuteActionResponse](ctx, c, "ExecuteAction", in, opts)
}

func (c *Client) RollEvent(ctx context.Context, in *ZoneRequest, opts ...grpc.CallOption) (*RollEventResponse, error) {
	return invoke[ZoneRequest, RollEventResponse](ctx, c, "RollEvent", in, opts)
}

func (c *Client) MakeEventChoice(ctx context.Context, in *MakeEventChoiceRequest, opts ...grpc.CallOption) (*MakeEventChoiceResponse, error) {
	return invoke[MakeEventChoiceRequest, MakeEventChoiceResponse](ctx, c, "MakeEventChoice", in, opts)
}

func (c *Client) UseItem(ctx context.Context, in *UseItemRequest, opts ...grpc.CallOption) (*UseItemResponse, error) {
	return invoke[UseItemRequest, UseItemResponse](ctx, c, "UseItem", in, opts)
}

func (c *Client) SubmitMinigameResult(ctx context.Context, in *SubmitMinigameResultRequest, opts ...grpc.CallOption) (*SubmitMinigameResultResponse, error) {
	return invoke[SubmitMinigameResultRequest, SubmitMinigameResultResponse](ctx, c, "SubmitMinigameResult", in, opts)
}

func (c *Client) EquipMask(ctx context.Context, in *MaskRequest, opts ...grpc.CallOption) (*EquipMaskResponse, error) {
	return invoke[MaskRequest, EquipMaskResponse](ctx, c, "EquipMask", in, opts)
}

func (c *Client) UnequipMask(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*Outcome, error) {
	return invoke[PlayerRequest, Outcome](ctx, c, "UnequipMask", in, opts)
}

func (c *Client) UnlockMask(ctx context.Context, in *MaskRequest, opts ...grpc.CallOption) (*UnlockMaskResponse, error) {
	return invoke[MaskRequest, UnlockMaskResponse](ctx, c, "UnlockMask", in, opts)
}

func (c *Client) ListMasks(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*ListMasksResponse, error) {
	return invoke[PlayerRequest, ListMasksResponse](ctx, c, "ListMasks", in, opts)
}

func (c *Client) GetNPCReaction(ctx context.Context, in *GetNPCReactionRequest, opts ...grpc.CallOption) (*GetNPCReactionResponse, error) {
	return invoke[GetNPCReactionRequest, GetNPCReactionResponse](ctx, c, "GetNPCReaction", in, opts)
}

func (c *Client) ListNPCsAt(ctx context.Context, in *ListNPCsAtRequest, opts ...grpc.CallOption) (*ListNPCsResponse, error) {
	return invoke[ListNPCsAtRequest, ListNPCsResponse](ctx, c, "ListNPCsAt", in, opts)
}

func (c *Client) GetRelationship(ctx context.Context, in *GetRelationshipRequest, opts ...grpc.CallOption) (*GetRelationshipResponse, error) {
	return invoke[GetRelationshipRequest, GetRelationshipResponse](ctx, c, "GetRelationship", in, opts)
}

func (c *Client) GetDayRecap(ctx context.Context, in *GetDayRecapRequest, opts ...grpc.CallOption) (*GetDayRecapResponse, error) {
	return invoke[GetDayRecapRequest, GetDayRecapResponse](ctx, c, "GetDayRecap", in, opts)
}

func (c *Client) ListEffectLog(ctx context.Context, in *ListEffectLogRequest, opts ...grpc.CallOption) (*ListEffectLogResponse, error) {
	return invoke[ListEffectLogRequest, ListEffectLogResponse](ctx, c, "ListEffectLog", in, opts)
}

func (c *Client) ListZones(ctx context.Context, in *ListZonesRequest, opts ...grpc.CallOption) (*ListZonesResponse, error) {
	return invoke[ListZonesRequest, ListZonesResponse](ctx, c, "ListZones", in, opts)
}

func (c *Client) GetZone(ctx context.Context, in *GetZoneRequest, opts ...grpc.CallOption) (*GetZoneResponse, error) {
	return invoke[GetZoneRequest, GetZoneResponse](ctx, c, "GetZone", in, opts)
}

func (c *Client) ListNPCs(ctx context.Context, in *ListNPCsRequest, opts ...grpc.CallOption) (*ListNPCsResponse, error) {
	return invoke[ListNPCsRequest, ListNPCsResponse](ctx, c, "ListNPCs", in, opts)
}

func (c *Client) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	return invoke[ListItemsRequest, ListItemsResponse](ctx, c, "ListItems", in, opts)
}

func (c *Client) ListMinigames(ctx context.Context, in *ListMinigamesRequest, opts ...grpc.CallOption) (*ListMinigamesResponse, error) {
	return invoke[ListMinigamesRequest, ListMinigamesResponse](ctx, c, "ListMinigames", in, opts)
}

func (c *Client) ListActions(ctx context.Context, in *ListCatalogActionsRequest, opts ...grpc.CallOption) (*ListActionsResponse, error) {
	return invoke[ListCatalogActionsRequest, ListActionsResponse](ctx, c, "ListActions", in, opts)
}
