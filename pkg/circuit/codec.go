package circuit

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Wire format for operation lists. Qubits are referenced by register
// position, so a decoded sequence is only meaningful against the same
// register ordering it was encoded with.

type wireExponent struct {
	Symbol  string  `msgpack:"symbol,omitempty"`
	Negated bool    `msgpack:"negated,omitempty"`
	Value   float64 `msgpack:"value,omitempty"`
}

type wireOperation struct {
	Gate     string       `msgpack:"gate"`
	Qubits   []int        `msgpack:"qubits"`
	Exponent wireExponent `msgpack:"exponent"`
}

func toWireExponent(e Exponent) wireExponent {
	if e.Symbolic() {
		return wireExponent{Symbol: e.symbol, Negated: e.negated}
	}
	return wireExponent{Value: e.value}
}

func fromWireExponent(w wireExponent) Exponent {
	if w.Symbol != "" {
		e := Sym(w.Symbol)
		if w.Negated {
			e = e.Neg()
		}
		return e
	}
	return Num(w.Value)
}

// EncodeOps serializes an operation list relative to reg.
func EncodeOps(reg Register, ops []Operation) ([]byte, error) {
	wire := make([]wireOperation, len(ops))
	for i, op := range ops {
		positions := make([]int, len(op.Qubits))
		for j, q := range op.Qubits {
			pos := reg.IndexOf(q)
			if pos < 0 {
				return nil, fmt.Errorf("encode: operation %s uses qubit %s not in register", op, q)
			}
			positions[j] = pos
		}
		wire[i] = wireOperation{
			Gate:     op.Gate.Name(),
			Qubits:   positions,
			Exponent: toWireExponent(op.Gate.Exponent()),
		}
	}
	return msgpack.Marshal(wire)
}

// DecodeOps deserializes an operation list against reg.
func DecodeOps(reg Register, data []byte) ([]Operation, error) {
	var wire []wireOperation
	if err := msgpack.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode operations: %w", err)
	}

	ops := make([]Operation, 0, len(wire))
	for _, w := range wire {
		qubits := make([]Qubit, len(w.Qubits))
		for i, pos := range w.Qubits {
			if pos < 0 || pos >= len(reg) {
				return nil, fmt.Errorf("decode: qubit position %d outside register of %d qubits", pos, len(reg))
			}
			qubits[i] = reg[pos]
		}
		e := fromWireExponent(w.Exponent)

		var op Operation
		switch w.Gate {
		case "X":
			if len(qubits) != 1 {
				return nil, fmt.Errorf("decode: X wants 1 qubit, got %d", len(qubits))
			}
			op = XPow(qubits[0], e)
		case "Z":
			if len(qubits) != 1 {
				return nil, fmt.Errorf("decode: Z wants 1 qubit, got %d", len(qubits))
			}
			op = ZPow(qubits[0], e)
		case "CNOT":
			if len(qubits) != 2 {
				return nil, fmt.Errorf("decode: CNOT wants 2 qubits, got %d", len(qubits))
			}
			op = CNOT(qubits[0], qubits[1])
		case "CZ":
			if len(qubits) != 2 {
				return nil, fmt.Errorf("decode: CZ wants 2 qubits, got %d", len(qubits))
			}
			op = CZPow(qubits[0], qubits[1], e)
		case "SWAP":
			if len(qubits) != 2 {
				return nil, fmt.Errorf("decode: SWAP wants 2 qubits, got %d", len(qubits))
			}
			op = SWAP(qubits[0], qubits[1])
		default:
			return nil, fmt.Errorf("decode: unknown gate %q", w.Gate)
		}
		ops = append(ops, op)
	}
	return ops, nil
}
