package zx

import (
	"github.com/PolyhedraZK/zxtransformer/utils"
	"github.com/pkg/errors"
)

const serializeMagic uint64 = 0x5a58554e49543031 // "ZXUNIT01"

// gate tags on the wire
const (
	tagXPhase uint8 = iota + 1
	tagYPhase
	tagZPhase
	tagHAD
	tagCZ
	tagCNOT
	tagSWAP
	tagCCZ
	tagS
	tagT
)

// Serialize converts a circuit into a byte array. Equal circuits serialize to
// equal bytes, which the optimizer cache relies on.
func (c *Circuit) Serialize() []byte {
	o := utils.OutputBuf{}
	o.AppendUint64(serializeMagic)
	o.AppendUint64(uint64(c.NbQubits))
	o.AppendUint64(uint64(len(c.Gates)))
	for _, g := range c.Gates {
		switch g := g.(type) {
		case XPhase:
			o.AppendUint8(tagXPhase)
			o.AppendFloat64(g.Phase)
		case YPhase:
			o.AppendUint8(tagYPhase)
			o.AppendFloat64(g.Phase)
		case ZPhase:
			o.AppendUint8(tagZPhase)
			o.AppendFloat64(g.Phase)
		case HAD:
			o.AppendUint8(tagHAD)
		case CZ:
			o.AppendUint8(tagCZ)
		case CNOT:
			o.AppendUint8(tagCNOT)
		case SWAP:
			o.AppendUint8(tagSWAP)
		case CCZ:
			o.AppendUint8(tagCCZ)
		case S:
			o.AppendUint8(tagS)
			o.AppendUint8(boolByte(g.Adjoint))
		case T:
			o.AppendUint8(tagT)
			o.AppendUint8(boolByte(g.Adjoint))
		}
		for _, q := range g.Qubits() {
			o.AppendUint32(uint32(q))
		}
	}
	return o.Bytes()
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Deserialize reads a circuit written by Serialize and validates it.
func Deserialize(buf []byte) (*Circuit, error) {
	in := utils.NewInputBuf(buf)
	if in.ReadUint64() != serializeMagic {
		return nil, errors.New("invalid header")
	}
	c := NewCircuit(int(in.ReadUint64()))
	n := in.ReadUint64()
	for i := uint64(0); i < n && in.Err() == nil; i++ {
		tag := in.ReadUint8()
		var g Gate
		switch tag {
		case tagXPhase:
			p := in.ReadFloat64()
			g = XPhase{Target: int(in.ReadUint32()), Phase: p}
		case tagYPhase:
			p := in.ReadFloat64()
			g = YPhase{Target: int(in.ReadUint32()), Phase: p}
		case tagZPhase:
			p := in.ReadFloat64()
			g = ZPhase{Target: int(in.ReadUint32()), Phase: p}
		case tagHAD:
			g = HAD{Target: int(in.ReadUint32())}
		case tagCZ:
			ctrl := int(in.ReadUint32())
			g = CZ{Control: ctrl, Target: int(in.ReadUint32())}
		case tagCNOT:
			ctrl := int(in.ReadUint32())
			g = CNOT{Control: ctrl, Target: int(in.ReadUint32())}
		case tagSWAP:
			ctrl := int(in.ReadUint32())
			g = SWAP{Control: ctrl, Target: int(in.ReadUint32())}
		case tagCCZ:
			c1 := int(in.ReadUint32())
			c2 := int(in.ReadUint32())
			g = CCZ{Ctrl1: c1, Ctrl2: c2, Target: int(in.ReadUint32())}
		case tagS:
			adj := in.ReadUint8() == 1
			g = S{Target: int(in.ReadUint32()), Adjoint: adj}
		case tagT:
			adj := in.ReadUint8() == 1
			g = T{Target: int(in.ReadUint32()), Adjoint: adj}
		default:
			if in.Err() == nil {
				return nil, errors.Errorf("gate %d: unknown tag %d", i, tag)
			}
		}
		if g != nil {
			c.AddGate(g)
		}
	}
	if err := in.Err(); err != nil {
		return nil, errors.Wrap(err, "deserialize circuit")
	}
	if in.Remaining() != 0 {
		return nil, errors.Errorf("%d trailing bytes", in.Remaining())
	}
	if err := Validate(c); err != nil {
		return nil, errors.Wrap(err, "deserialize circuit")
	}
	return c, nil
}
