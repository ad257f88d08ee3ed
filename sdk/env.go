package sdk

// Env is the per-transaction execution snapshot handed down by the chain.
// The host serves it as one JSON blob keyed by dotted names, hence the tags.
type Env struct {
	ContractId  string   `json:"contract.id"`
	TxId        string   `json:"tx.id"`
	Index       int64    `json:"tx.index"`
	OpIndex     int64    `json:"tx.op_index"`
	BlockId     string   `json:"block.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"block.timestamp"`
	Payer       Address  `json:"msg.payer"`
	Intents     []Intent `json:"intents"`
	Sender      Sender   `json:"-"`
	Caller      Caller   `json:"-"`
}
