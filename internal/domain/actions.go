package domain

import "strings"

// ActionType - внутренний числовой идентификатор действия игрока.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionLook
	ActionMove
	ActionAttack
	ActionFlee
	ActionPickup
	ActionUse
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":   ActionInit,
	"LOOK":   ActionLook,
	"MOVE":   ActionMove,
	"ATTACK": ActionAttack,
	"FLEE":   ActionFlee,
	"PICKUP": ActionPickup,
	"USE":    ActionUse,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:   "INIT",
	ActionLook:   "LOOK",
	ActionMove:   "MOVE",
	ActionAttack: "ATTACK",
	ActionFlee:   "FLEE",
	ActionPickup: "PICKUP",
	ActionUse:    "USE",
}

// ParseAction конвертирует строку из JSON в ActionType.
// Нечувствителен к регистру.
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
