package datastream

// DataStream 定義資料流的介面
type DataStream interface {
	Close() error
	Next() int
	GetDistribute() map[int64]float64
	GetCDF() []float64
	GetPDF() []float64
	Entropy() float64
}

// OperationType 表示操作種類
type OperationType uint8

const (
	OpQuery OperationType = iota
	OpInsert
	OpDelete
)

func (t OperationType) String() string {
	switch t {
	case OpQuery:
		return "Query"
	case OpInsert:
		return "Insert"
	case OpDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Operation 表示一筆操作，檔案中以 [type, key] 陣列編碼
type Operation struct {
	_msgpack struct{} `msgpack:",as_array"`

	Type OperationType `msgpack:"type"`
	Key  int64         `msgpack:"key"`
}

// SequenceModel 以既有的 Operation 序列提供順序重播
type SequenceModel struct {
	ops []Operation
	pos int
}

// NewSequenceModelFromOps 由外部供給的操作序列建立模型
func NewSequenceModelFromOps(ops []Operation) *SequenceModel {
	cp := make([]Operation, len(ops))
	copy(cp, ops)
	return &SequenceModel{ops: cp}
}

// Next 回傳下一筆操作，若結束則回傳零值與 false
func (m *SequenceModel) Next() (Operation, bool) {
	if m.pos >= len(m.ops) {
		return Operation{}, false
	}
	op := m.ops[m.pos]
	m.pos++
	return op, true
}

// NextN 回傳接下來 n 筆（或直到結束）的操作
func (m *SequenceModel) NextN(n int) []Operation {
	if n <= 0 || m.pos >= len(m.ops) {
		return nil
	}
	end := min(m.pos+n, len(m.ops))
	out := make([]Operation, end-m.pos)
	copy(out, m.ops[m.pos:end])
	m.pos = end
	return out
}

// Len 回傳剩餘的操作數
func (m *SequenceModel) Len() int { return len(m.ops) - m.pos }

// Reset 游標重置到起點
func (m *SequenceModel) Reset() { m.pos = 0 }
