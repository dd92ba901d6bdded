package r2000

import (
	"context"
	"time"

	"github.com/jaytaylor/r2000reader/proto"
)

// TagOpTimeout bounds a Read/Write/Lock/Kill round trip, which may
// involve retries against a tag population rather than a single fixed
// reply.
const TagOpTimeout = 3 * time.Second

// ReadParams selects what ReadTags reads.
type ReadParams struct {
	Bank           proto.MemoryBank
	StartAddress   byte
	WordCount      byte
	AccessPassword [4]byte
}

func (p ReadParams) payload() []byte {
	out := []byte{byte(p.Bank), p.StartAddress, p.WordCount}
	return append(out, p.AccessPassword[:]...)
}

// ReadTags reads tag memory from every tag matching the currently
// configured access EPC match (or every tag in range, if none is
// set), returning one ReadRecord per tag.
func (r *Reader) ReadTags(ctx context.Context, p ReadParams) ([]ReadRecord, error) {
	rep, err := r.sendCommand(ctx, proto.CmdRead, p.payload(), TagOpTimeout, false)
	if err != nil {
		return nil, err
	}
	if rep.HasErrorCode && !rep.Success {
		return nil, &FaultError{Command: proto.CmdRead, Code: rep.ErrorCode}
	}
	return rep.Read, nil
}

// WriteParams selects where WriteTags writes and what. Data of odd
// length is zero-padded to a whole number of words per §4.6.
type WriteParams struct {
	Bank           proto.MemoryBank
	StartAddress   byte
	Data           []byte
	AccessPassword [4]byte
}

func (p WriteParams) payload() []byte {
	data := p.Data
	if len(data)%2 != 0 {
		data = append(append([]byte(nil), data...), 0)
	}
	out := []byte{byte(p.Bank), p.StartAddress, byte(len(data) / 2)}
	out = append(out, p.AccessPassword[:]...)
	return append(out, data...)
}

// WriteTags writes tag memory to every matching tag, using WRITE for
// payloads that fit in one frame.
func (r *Reader) WriteTags(ctx context.Context, p WriteParams) ([]TagOpRecord, error) {
	return r.writeTagsWith(ctx, proto.CmdWrite, p)
}

// WriteTagsBlock writes tag memory using WRITE_BLOCK, the reader's
// block-write variant for larger payloads.
func (r *Reader) WriteTagsBlock(ctx context.Context, p WriteParams) ([]TagOpRecord, error) {
	return r.writeTagsWith(ctx, proto.CmdWriteBlock, p)
}

func (r *Reader) writeTagsWith(ctx context.Context, cmd proto.Command, p WriteParams) ([]TagOpRecord, error) {
	rep, err := r.sendCommand(ctx, cmd, p.payload(), TagOpTimeout, false)
	if err != nil {
		return nil, err
	}
	if rep.HasErrorCode && !rep.Success {
		return nil, &FaultError{Command: cmd, Code: rep.ErrorCode}
	}
	return rep.Write, nil
}

// LockParams selects a lock action on one memory bank.
type LockParams struct {
	Bank           proto.LockMemoryBank
	Action         proto.LockType
	AccessPassword [4]byte
}

func (p LockParams) payload() []byte {
	out := []byte{byte(p.Bank), byte(p.Action)}
	return append(out, p.AccessPassword[:]...)
}

// LockTags applies a lock action to every matching tag.
func (r *Reader) LockTags(ctx context.Context, p LockParams) ([]TagOpRecord, error) {
	rep, err := r.sendCommand(ctx, proto.CmdLock, p.payload(), TagOpTimeout, false)
	if err != nil {
		return nil, err
	}
	if rep.HasErrorCode && !rep.Success {
		return nil, &FaultError{Command: proto.CmdLock, Code: rep.ErrorCode}
	}
	return rep.Lock, nil
}

// KillTags permanently disables every matching tag using its kill
// password.
func (r *Reader) KillTags(ctx context.Context, killPassword [4]byte) ([]TagOpRecord, error) {
	rep, err := r.sendCommand(ctx, proto.CmdKill, killPassword[:], TagOpTimeout, false)
	if err != nil {
		return nil, err
	}
	if rep.HasErrorCode && !rep.Success {
		return nil, &FaultError{Command: proto.CmdKill, Code: rep.ErrorCode}
	}
	return rep.Kill, nil
}
