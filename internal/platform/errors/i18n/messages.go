package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
const (
	CodePlayerIDEmpty       = "PLAYER_ID_EMPTY"
	CodePlayerUsernameEmpty = "PLAYER_USERNAME_EMPTY"
	CodePlayerUsernameTaken = "PLAYER_USERNAME_TAKEN"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodePlayerMoodEmpty     = "PLAYER_MOOD_EMPTY"
	CodeTimeInvalid         = "TIME_INVALID"
	CodeTimeCostNegative    = "TIME_COST_NEGATIVE"
	CodeActionNotFound      = "ACTION_NOT_FOUND"
	CodeEventNotFound       = "EVENT_NOT_FOUND"
	CodeChoiceNotFound      = "CHOICE_NOT_FOUND"
	CodeItemNotFound        = "ITEM_NOT_FOUND"
	CodeMinigameNotFound    = "MINIGAME_NOT_FOUND"
	CodeMaskNotFound        = "MASK_NOT_FOUND"
	CodeZoneNotFound        = "ZONE_NOT_FOUND"
	CodeNPCNotFound         = "NPC_NOT_FOUND"
	CodeActionUnavailable   = "ACTION_UNAVAILABLE"
	CodeItemNotInInventory  = "ITEM_NOT_IN_INVENTORY"
	CodeMaskLocked          = "MASK_LOCKED"
	CodeMaskAlreadyOwned    = "MASK_ALREADY_OWNED"
	CodeNotFound            = "NOT_FOUND"
)

var enUS = map[Code]string{
	CodePlayerIDEmpty:       "A player is required.",
	CodePlayerUsernameEmpty: "Choose a username to start a new game.",
	CodePlayerUsernameTaken: "The username {{.Username}} is already taken.",
	CodePlayerNotFound:      "No saved game was found for this player.",
	CodePlayerMoodEmpty:     "Pick a mood, or use neutral to reset it.",
	CodeTimeInvalid:         "{{.Time}} is not a valid time of day.",
	CodeTimeCostNegative:    "Time cannot run backwards.",
	CodeActionNotFound:      "That action does not exist.",
	CodeEventNotFound:       "That event does not exist.",
	CodeChoiceNotFound:      "That choice is not part of this event.",
	CodeItemNotFound:        "That item does not exist.",
	CodeMinigameNotFound:    "That class activity does not exist.",
	CodeMaskNotFound:        "That mask does not exist.",
	CodeZoneNotFound:        "That place does not exist.",
	CodeNPCNotFound:         "Nobody by that name attends this school.",
	CodeActionUnavailable:   "You cannot do {{.Action}} right now.",
	CodeItemNotInInventory:  "You do not have {{.Item}}.",
	CodeMaskLocked:          "The {{.Mask}} mask is still locked.",
	CodeMaskAlreadyOwned:    "You already own the {{.Mask}} mask.",
	CodeNotFound:            "The requested record was not found.",
}

var ptBR = map[Code]string{
	CodePlayerIDEmpty:       "Um jogador é obrigatório.",
	CodePlayerUsernameEmpty: "Escolha um nome de usuário para começar um novo jogo.",
	CodePlayerUsernameTaken: "O nome de usuário {{.Username}} já está em uso.",
	CodePlayerNotFound:      "Nenhum jogo salvo foi encontrado para este jogador.",
	CodePlayerMoodEmpty:     "Escolha um humor, ou use neutral para redefini-lo.",
	CodeTimeInvalid:         "{{.Time}} não é um horário válido.",
	CodeTimeCostNegative:    "O tempo não pode voltar.",
	CodeActionNotFound:      "Essa ação não existe.",
	CodeEventNotFound:       "Esse evento não existe.",
	CodeChoiceNotFound:      "Essa escolha não faz parte deste evento.",
	CodeItemNotFound:        "Esse item não existe.",
	CodeMinigameNotFound:    "Essa atividade de aula não existe.",
	CodeMaskNotFound:        "Essa máscara não existe.",
	CodeZoneNotFound:        "Esse lugar não existe.",
	CodeNPCNotFound:         "Ninguém com esse nome estuda nesta escola.",
	CodeActionUnavailable:   "Você não pode fazer {{.Action}} agora.",
	CodeItemNotInInventory:  "Você não tem {{.Item}}.",
	CodeMaskLocked:          "A máscara {{.Mask}} ainda está bloqueada.",
	CodeMaskAlreadyOwned:    "Você já possui a máscara {{.Mask}}.",
	CodeNotFound:            "O registro solicitado não foi encontrado.",
}
