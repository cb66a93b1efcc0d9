package bidi

// Implicit level states. The names record the last strong direction (L or
// R), an open number (En, An, a after AN) and what is pending: n for
// neutrals, t for European terminators, s for a separator inside a number.
const (
	sL uint8 = iota
	sLn
	sLt
	sLnt
	sR
	sRn
	sRt
	sRnt
	sLa
	sLan
	sLat
	sLant
	// sEnL has no separator state of its own. European numbers after L
	// resolve to L, so a separator following one is a plain neutral and
	// goes to sLn.
	sEnL
	sEnR
	sEnRs
	sAnR
	sAnLs
	sAnRs

	stateCount

	// sos selects sL or sR from the base level.
	sos uint8 = 31
)

// Actions resolve the pending run when a transition completes it.
const (
	actNone uint8 = iota
	// actL gives the run the left to right level.
	actL
	// actR gives the run the right to left level.
	actR
	// actBase gives the run the base level.
	actBase
	// actNumber gives the run the number level.
	actNumber
	// actSplit resolves neutrals before the terminators by their
	// neighbors and gives the terminators the level of the current
	// character.
	actSplit
)

// cell packs the next state in the low 5 bits and an action in the high 3.
type cell uint8

func (c cell) next() uint8 {
	return uint8(c) & 0b_1_1111
}

func (c cell) action() uint8 {
	return uint8(c) >> 5
}

func to(state, action uint8) cell {
	return cell(action<<5 | state)
}

// kind is what a state says about the character that entered it.
type kind uint8

const (
	kindPending kind = iota
	kindL
	kindR
	kindNumber
)

type stateInfo struct {
	name string
	kind kind

	// etPending is set for states where the tail of the pending run is
	// European terminators.
	etPending bool

	// dir is the strong direction (L or R) a pending run sees behind it,
	// or the direction the entering character presents to a pending run
	// ahead of it. Numbers present their context direction: European
	// numbers after L are L, all other numbers are R.
	dir Class
}

var states = [stateCount]stateInfo{
	sL:    {"sL", kindL, false, L},
	sLn:   {"sLn", kindPending, false, L},
	sLt:   {"sLt", kindPending, true, L},
	sLnt:  {"sLnt", kindPending, true, L},
	sR:    {"sR", kindR, false, R},
	sRn:   {"sRn", kindPending, false, R},
	sRt:   {"sRt", kindPending, true, R},
	sRnt:  {"sRnt", kindPending, true, R},
	sLa:   {"sLa", kindNumber, false, R},
	sLan:  {"sLan", kindPending, false, R},
	sLat:  {"sLat", kindPending, true, R},
	sLant: {"sLant", kindPending, true, R},
	sEnL:  {"sEnL", kindL, false, L},
	sEnR:  {"sEnR", kindNumber, false, R},
	sEnRs: {"sEnRs", kindPending, false, R},
	sAnR:  {"sAnR", kindNumber, false, R},
	sAnLs: {"sAnLs", kindPending, false, R},
	sAnRs: {"sAnRs", kindPending, false, R},
}

// implicitTable is indexed by state and class (B, S, L, R, EN, AN, ET, ES,
// CS, WS, ON, BS).
var implicitTable = [stateCount][BS + 1]cell{
	sL:    {to(sos, 0), to(sLn, 0), to(sL, 0), to(sR, 0), to(sEnL, 0), to(sLa, 0), to(sLt, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0)},
	sLn:   {to(sos, actBase), to(sLn, 0), to(sL, actL), to(sR, actBase), to(sEnL, actL), to(sLa, actBase), to(sLnt, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0)},
	sLt:   {to(sos, actBase), to(sLn, 0), to(sL, actL), to(sR, actBase), to(sEnL, actL), to(sLa, actBase), to(sLt, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0)},
	sLnt:  {to(sos, actBase), to(sLn, 0), to(sL, actL), to(sR, actBase), to(sEnL, actL), to(sLa, actBase), to(sLnt, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0)},
	sR:    {to(sos, 0), to(sRn, 0), to(sL, 0), to(sR, 0), to(sEnR, 0), to(sAnR, 0), to(sRt, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0)},
	sRn:   {to(sos, actBase), to(sRn, 0), to(sL, actBase), to(sR, actR), to(sEnR, actR), to(sAnR, actR), to(sRnt, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0)},
	sRt:   {to(sos, actBase), to(sRn, 0), to(sL, actBase), to(sR, actR), to(sEnR, actNumber), to(sAnR, actR), to(sRt, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0)},
	sRnt:  {to(sos, actBase), to(sRn, 0), to(sL, actBase), to(sR, actR), to(sEnR, actSplit), to(sAnR, actR), to(sRnt, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0)},
	sLa:   {to(sos, 0), to(sLan, 0), to(sL, 0), to(sR, 0), to(sEnL, 0), to(sLa, 0), to(sLat, 0), to(sLan, 0), to(sAnLs, 0), to(sLan, 0), to(sLan, 0), to(sLan, 0)},
	sLan:  {to(sos, actBase), to(sLan, 0), to(sL, actBase), to(sR, actR), to(sEnL, actBase), to(sLa, actR), to(sLant, 0), to(sLan, 0), to(sLan, 0), to(sLan, 0), to(sLan, 0), to(sLan, 0)},
	sLat:  {to(sos, actBase), to(sLan, 0), to(sL, actBase), to(sR, actR), to(sEnL, actL), to(sLa, actR), to(sLat, 0), to(sLan, 0), to(sLan, 0), to(sLan, 0), to(sLan, 0), to(sLan, 0)},
	sLant: {to(sos, actBase), to(sLan, 0), to(sL, actBase), to(sR, actR), to(sEnL, actSplit), to(sLa, actR), to(sLant, 0), to(sLan, 0), to(sLan, 0), to(sLan, 0), to(sLan, 0), to(sLan, 0)},
	sEnL:  {to(sos, 0), to(sLn, 0), to(sL, 0), to(sR, 0), to(sEnL, 0), to(sLa, 0), to(sEnL, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0), to(sLn, 0)},
	sEnR:  {to(sos, 0), to(sRn, 0), to(sL, 0), to(sR, 0), to(sEnR, 0), to(sAnR, 0), to(sEnR, 0), to(sEnRs, 0), to(sEnRs, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0)},
	sEnRs: {to(sos, actBase), to(sRn, 0), to(sL, actBase), to(sR, actR), to(sEnR, actNumber), to(sAnR, actR), to(sRnt, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0)},
	sAnR:  {to(sos, 0), to(sRn, 0), to(sL, 0), to(sR, 0), to(sEnR, 0), to(sAnR, 0), to(sRt, 0), to(sRn, 0), to(sAnRs, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0)},
	sAnLs: {to(sos, actBase), to(sLan, 0), to(sL, actBase), to(sR, actR), to(sEnL, actBase), to(sLa, actNumber), to(sLant, 0), to(sLan, 0), to(sLan, 0), to(sLan, 0), to(sLan, 0), to(sLan, 0)},
	sAnRs: {to(sos, actBase), to(sRn, 0), to(sL, actBase), to(sR, actR), to(sEnR, actR), to(sAnR, actNumber), to(sRnt, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0), to(sRn, 0)},
}
