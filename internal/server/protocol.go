/*
Package server answers candidate requests over a msgpack stream, typically stdin/stdout.

Every message is one msgpack map. A suggest request looks like

	{"id": "r1", "action": "suggest", "key": "きょう", "limit": 5,
	 "history_key": "あした", "history_value": "明日", "history_rid": 1285, "history_cost": 3120}

history_cost is the cost of the history word when it was suggested. An empty key
with a history word asks for what usually follows it. The request is answered with

	{"id": "r1", "ok": true, "candidates": [{"key": "きょう", "value": "今日", ...}], "count": 1, "time_ms": 2}

A commit request records what the user finally typed:

	{"id": "c1", "action": "commit", "commits": [{"key": "きょう", "value": "今日", "lid": 1285, "rid": 1285}]}

Requests without an id get a generated one.
*/
package server

type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`

	Key          string `msgpack:"key"`
	Limit        int    `msgpack:"limit,omitempty"`
	Kind         string `msgpack:"kind,omitempty"`
	Mixed        *bool  `msgpack:"mixed,omitempty"`
	HistoryKey   string `msgpack:"history_key,omitempty"`
	HistoryValue string `msgpack:"history_value,omitempty"`
	HistoryLID   int    `msgpack:"history_lid,omitempty"`
	HistoryRID   int    `msgpack:"history_rid,omitempty"`
	HistoryCost  int    `msgpack:"history_cost,omitempty"`
	Debug        bool   `msgpack:"debug,omitempty"`

	Commits []Word `msgpack:"commits,omitempty"`
}

type Word struct {
	Key     string `msgpack:"key"`
	Value   string `msgpack:"value"`
	LeftID  int    `msgpack:"lid"`
	RightID int    `msgpack:"rid"`
}

type Candidate struct {
	Key         string   `msgpack:"key"`
	Value       string   `msgpack:"value"`
	Cost        int      `msgpack:"cost"`
	LeftID      int      `msgpack:"lid"`
	RightID     int      `msgpack:"rid"`
	Description string   `msgpack:"description,omitempty"`
	Log         []string `msgpack:"log,omitempty"`
}

type Response struct {
	ID         string      `msgpack:"id"`
	OK         bool        `msgpack:"ok"`
	Candidates []Candidate `msgpack:"candidates,omitempty"`
	Count      int         `msgpack:"count"`
	TimeTaken  int64       `msgpack:"time_ms"`
	Error      string      `msgpack:"error,omitempty"`
}
