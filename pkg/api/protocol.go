package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse - корневой объект ответа клиенту: снимок видимого
// состояния партии после очередного действия.
type ServerResponse struct {
	// Type тип сообщения: "INIT" на первый ответ, дальше "UPDATE".
	Type string `json:"type"`

	// State текущее состояние партии:
	// EXPLORING, BLOCKED, COMBAT, VICTORY, DEFEAT.
	State string `json:"state"`

	Turn  int `json:"turn"`
	Score int `json:"score"`

	// Room комната, в которой стоит герой.
	Room *RoomView `json:"room,omitempty"`

	Player *PlayerView `json:"player,omitempty"`

	// Logs новые сообщения с прошлого действия.
	Logs []LogEntry `json:"logs,omitempty"`
}

// RoomView - DTO комнаты для клиента.
type RoomView struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Exits       []string `json:"exits"`
	IsExit      bool     `json:"isExit"`
	Visited     bool     `json:"visited"`

	// Monster присутствует, пока в комнате есть монстр (живой или труп).
	Monster *MonsterView `json:"monster,omitempty"`

	Treasures []ItemView `json:"treasures,omitempty"`
}

// MonsterView - DTO монстра.
type MonsterView struct {
	Name      string `json:"name"`
	Health    int    `json:"health"`
	MaxHealth int    `json:"maxHealth"`
	IsDead    bool   `json:"isDead"`
}

// PlayerView - DTO героя.
type PlayerView struct {
	Name      string     `json:"name"`
	Health    int        `json:"health"`
	MaxHealth int        `json:"maxHealth"`
	Attack    int        `json:"attack"`
	Exp       int        `json:"exp"`
	Inventory []ItemView `json:"inventory"`
}

// ItemView - DTO предмета.
type ItemView struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
	Value  int    `json:"value"`
	Effect int    `json:"effect,omitempty"`
}

// LogEntry - одна запись игрового лога.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- СНИМОК ПАРТИИ ---

// GameSnapshot - полный сериализуемый снимок партии для внешнего
// хранилища. Движок только отдает его; формат файла сохранения
// и чтение обратно - забота внешнего репозитория.
type GameSnapshot struct {
	Seed     int64        `json:"seed"`
	Turn     int          `json:"turn"`
	Score    int          `json:"score"`
	InCombat bool         `json:"inCombat"`
	Position PositionView `json:"position"`

	Player  PlayerSnapshot  `json:"player"`
	Dungeon DungeonSnapshot `json:"dungeon"`
}

type PositionView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type PlayerSnapshot struct {
	Name      string     `json:"name"`
	Health    int        `json:"health"`
	MaxHealth int        `json:"maxHealth"`
	Attack    int        `json:"attack"`
	Exp       int        `json:"exp"`
	Inventory []ItemView `json:"inventory"`
}

type DungeonSnapshot struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Difficulty int            `json:"difficulty"`
	Entrance   PositionView   `json:"entrance"`
	Exit       PositionView   `json:"exit"`
	Rooms      []RoomSnapshot `json:"rooms"`
}

type RoomSnapshot struct {
	ID          string       `json:"id"`
	Pos         PositionView `json:"pos"`
	Description string       `json:"description"`
	IsExit      bool         `json:"isExit"`
	Visited     bool         `json:"visited"`

	// Connections - проходы по именам направлений ("north": true).
	Connections map[string]bool `json:"connections"`

	Monster   *MonsterSnapshot `json:"monster,omitempty"`
	Treasures []ItemView       `json:"treasures,omitempty"`
}

type MonsterSnapshot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Health    int    `json:"health"`
	MaxHealth int    `json:"maxHealth"`
	Attack    int    `json:"attack"`
	Exp       int    `json:"exp"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - корневой объект всех сообщений от клиента.
type ClientCommand struct {
	// Action название действия (MOVE, ATTACK, FLEE, ...).
	Action string `json:"action"`

	// Payload JSON-объект с данными действия. Структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// InitPayload используется командой INIT.
type InitPayload struct {
	Name string `json:"name,omitempty"`
}

// DirectionPayload используется командой MOVE.
// Принимаются полные имена и односимвольные алиасы ("north", "n").
type DirectionPayload struct {
	Direction string `json:"direction"`
}

// ItemPayload используется командой USE.
// Пустой ItemID означает "первое подходящее зелье".
type ItemPayload struct {
	ItemID string `json:"itemId,omitempty"`
}
