package r2000

import charmlog "github.com/charmbracelet/log"

// accumulate parses one record of a multi-packet reply and appends it
// to the matching queue. ok is false only when the record itself was
// malformed (logged here, frame dropped by the caller); complete is
// true once the queue's length reaches the record's declared count.
func accumulate(q *queueSet, kind multiKind, payload []byte, log *charmlog.Logger, stats *Stats) (complete bool, ok bool) {
	switch kind {
	case multiInventoryBuffer:
		count, rec, err := parseBufferedRecord(payload)
		if err != nil {
			log.Debug("dropped malformed buffered-inventory record", "err", err)
			return false, false
		}
		q.inventoryBuffer = append(q.inventoryBuffer, rec)
		return len(q.inventoryBuffer) >= int(count), true
	case multiTagMaskList:
		count, rec, err := parseTagMaskRecord(payload)
		if err != nil {
			log.Debug("dropped malformed tag-mask record", "err", err)
			return false, false
		}
		q.masks = append(q.masks, rec)
		return len(q.masks) >= int(count), true
	case multiRead:
		count, rec, err := parseReadRecord(payload)
		if err != nil {
			log.Debug("dropped malformed read record", "err", err)
			return false, false
		}
		q.read = append(q.read, rec)
		return len(q.read) >= int(count), true
	case multiWrite:
		count, rec, err := parseTagOpRecord(payload)
		if err != nil {
			log.Debug("dropped malformed write record", "err", err)
			return false, false
		}
		q.write = append(q.write, rec)
		return len(q.write) >= int(count), true
	case multiLock:
		count, rec, err := parseTagOpRecord(payload)
		if err != nil {
			log.Debug("dropped malformed lock record", "err", err)
			return false, false
		}
		q.lock = append(q.lock, rec)
		return len(q.lock) >= int(count), true
	case multiKill:
		count, rec, err := parseTagOpRecord(payload)
		if err != nil {
			log.Debug("dropped malformed kill record", "err", err)
			return false, false
		}
		q.kill = append(q.kill, rec)
		return len(q.kill) >= int(count), true
	default:
		return true, true
	}
}

// drain moves a completed queue's records into rep and clears the
// queue, per §4.7 ("cleared when the terminal packet resolves the
// pending command").
func drain(q *queueSet, kind multiKind, rep *Reply) {
	switch kind {
	case multiInventoryBuffer:
		rep.InventoryBuffer = q.inventoryBuffer
		q.inventoryBuffer = nil
	case multiTagMaskList:
		rep.Masks = q.masks
		q.masks = nil
	case multiRead:
		rep.Read = q.read
		q.read = nil
	case multiWrite:
		rep.Write = q.write
		q.write = nil
	case multiLock:
		rep.Lock = q.lock
		q.lock = nil
	case multiKill:
		rep.Kill = q.kill
		q.kill = nil
	}
}
