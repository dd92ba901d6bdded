// Package proto holds the Indy R2000 constant/enum catalog: command
// codes, error codes, the per-command error-return policy, and the
// other fixed reader enumerations (antennas, memory banks, lock types,
// frequency regions, RF link profiles, sessions, and the frequency
// table). Everything here is immutable data, shared by the frame
// dispatcher and the per-command parsers.
package proto

// Command is a one-byte command/reply code.
type Command byte

// Command codes, named as in the vendor protocol documentation.
const (
	CmdGetGPIO                       Command = 0x60
	CmdSetGPIO                       Command = 0x61
	CmdSetAntennaDetector             Command = 0x62
	CmdGetAntennaDetector             Command = 0x63
	CmdSetTemporaryOutputPower        Command = 0x66
	CmdSetIdentifier                  Command = 0x67
	CmdGetIdentifier                  Command = 0x68
	CmdSetRFLinkProfile               Command = 0x69
	CmdGetRFLinkProfile               Command = 0x6A
	CmdReset                          Command = 0x70
	CmdSetBaudRate                    Command = 0x71
	CmdGetFirmwareVersion             Command = 0x72
	CmdSetAddress                     Command = 0x73
	CmdSetWorkingAntenna              Command = 0x74
	CmdGetWorkingAntenna              Command = 0x75
	CmdSetOutputPower                 Command = 0x76
	CmdGetOutputPower                 Command = 0x77
	CmdSetFrequencyRegion             Command = 0x78
	CmdGetFrequencyRegion             Command = 0x79
	CmdSetBeeperMode                  Command = 0x7A
	CmdGetReaderTemperature           Command = 0x7B
	CmdSetDenseReaderMode             Command = 0x7C
	CmdGetDenseReaderMode             Command = 0x7D
	CmdGetRFPortReturnLoss            Command = 0x7E
	CmdStartBufferedInventory         Command = 0x80 // reply payload is the "INVENTORY" summary record
	CmdRead                           Command = 0x81
	CmdWrite                          Command = 0x82
	CmdLock                           Command = 0x83
	CmdKill                           Command = 0x84
	CmdSetAccessEPCMatch              Command = 0x85
	CmdGetAccessEPCMatch              Command = 0x86
	CmdRealTimeInventory              Command = 0x89
	CmdFastSwitchAntInventory         Command = 0x8A
	CmdSessionInventory               Command = 0x8B
	CmdSetTemporaryFastID             Command = 0x8C
	CmdSetFastID                      Command = 0x8D
	CmdGetFastID                      Command = 0x8E
	CmdGetAntennaSwitchingSequence    Command = 0x8F
	CmdGetInventoryBuffer             Command = 0x90
	CmdGetAndResetInventoryBuffer     Command = 0x91
	CmdGetInventoryBufferCount        Command = 0x92
	CmdResetInventoryBuffer           Command = 0x93
	CmdWriteBlock                     Command = 0x94
	CmdGetOutputPower8P               Command = 0x97
	CmdTagMask                        Command = 0x98
	CmdSetModuleFunction              Command = 0xA0
	CmdGetModuleFunction              Command = 0xA1
	Cmd6BInventory                    Command = 0xB0
	Cmd6BRead                        Command = 0xB1
	Cmd6BWrite                       Command = 0xB2
	Cmd6BLock                        Command = 0xB3
	Cmd6BQueryLock                   Command = 0xB4
)

// ErrorPolicy classifies how a command's reply payload should be read:
// whether its first byte is an error code at all, and under what
// condition.
type ErrorPolicy int

const (
	// PolicyNo means the first payload byte is always data.
	PolicyNo ErrorPolicy = iota
	// PolicyYes means a one-byte payload is an error code; success iff
	// it equals ErrSuccess. The dispatcher reads a longer payload as
	// data with no error code, exactly as for PolicyIfSingleByte.
	PolicyYes
	// PolicyIfSingleByte means the first payload byte is an error code
	// iff the payload is exactly one byte long (frame length 4).
	PolicyIfSingleByte
	// PolicySometimes means the classification is command-specific; see
	// the special cases documented on and applied by the dispatcher's
	// classifyError.
	PolicySometimes
)

// Descriptor documents one command code.
type Descriptor struct {
	Name        string
	Description string
	Policy      ErrorPolicy
}

// Descriptors is the static command table keyed by code. Every command
// code this driver recognizes must appear here; the dispatcher treats
// an absent code as "unknown command" (§4.4 step 3).
var Descriptors = map[Command]Descriptor{
	CmdGetGPIO:                    {"GET_GPIO", "Read GPIO1/GPIO2 input level", PolicyYes},
	CmdSetGPIO:                    {"SET_GPIO", "Drive GPIO3/GPIO4 output level", PolicyYes},
	CmdSetAntennaDetector:         {"SET_ANT_DET", "Set antenna detector sensitivity", PolicyYes},
	CmdGetAntennaDetector:         {"GET_ANT_DET", "Get antenna detector sensitivity", PolicyIfSingleByte},
	CmdSetTemporaryOutputPower:    {"SET_TEMP_POWER", "Set non-persisted output power", PolicyYes},
	CmdSetIdentifier:              {"SET_IDENT", "Set reader identifier (12 bytes)", PolicyYes},
	CmdGetIdentifier:              {"GET_IDENT", "Get reader identifier", PolicyIfSingleByte},
	CmdSetRFLinkProfile:           {"SET_RFLINK", "Set RF link profile", PolicyYes},
	CmdGetRFLinkProfile:           {"GET_RFLINK", "Get RF link profile", PolicySometimes},
	CmdReset:                      {"RESET", "Reset reader", PolicyNo},
	CmdSetBaudRate:                {"SET_BAUD", "Set UART baud rate", PolicyYes},
	CmdGetFirmwareVersion:         {"GET_FW", "Get firmware version", PolicyNo},
	CmdSetAddress:                 {"SET_ADDR", "Set reader RS-485 address", PolicyYes},
	CmdSetWorkingAntenna:          {"SET_WORK_ANT", "Set the active antenna port", PolicyYes},
	CmdGetWorkingAntenna:          {"GET_WORK_ANT", "Get the active antenna port", PolicyIfSingleByte},
	CmdSetOutputPower:             {"SET_POWER", "Set output power", PolicyYes},
	CmdGetOutputPower:             {"GET_POWER", "Get output power (4 ports)", PolicyNo},
	CmdSetFrequencyRegion:         {"SET_FREQ", "Set frequency region/band", PolicyYes},
	CmdGetFrequencyRegion:         {"GET_FREQ", "Get frequency region/band", PolicyNo},
	CmdSetBeeperMode:              {"SET_BEEPER", "Set beeper mode", PolicyYes},
	CmdGetReaderTemperature:       {"GET_TEMP", "Get reader temperature", PolicyNo},
	CmdSetDenseReaderMode:         {"SET_DRM", "Set dense reader mode", PolicyYes},
	CmdGetDenseReaderMode:         {"GET_DRM", "Get dense reader mode", PolicyIfSingleByte},
	CmdGetRFPortReturnLoss:        {"GET_RETLOSS", "Get RF port return loss", PolicySometimes},
	CmdStartBufferedInventory:     {"INVENTORY", "Start buffered inventory / summary reply", PolicyYes},
	CmdRead:                       {"READ", "Read tag memory", PolicyYes},
	CmdWrite:                      {"WRITE", "Write tag memory", PolicyYes},
	CmdLock:                       {"LOCK", "Lock tag memory", PolicyYes},
	CmdKill:                       {"KILL", "Kill tag", PolicyYes},
	CmdSetAccessEPCMatch:          {"SET_EPC_MATCH", "Set access EPC match mask", PolicyYes},
	CmdGetAccessEPCMatch:          {"GET_EPC_MATCH", "Get access EPC match mask", PolicyYes},
	CmdRealTimeInventory:          {"RT_INVENTORY", "Start real-time inventory", PolicyYes},
	CmdFastSwitchAntInventory:     {"FS_ANT_INVENTORY", "Start fast-switch antenna inventory", PolicyYes},
	CmdSessionInventory:           {"SESSION_INVENTORY", "Start session-targeted inventory", PolicyYes},
	CmdSetTemporaryFastID:         {"SET_FASTID", "Set FastID non-persisted", PolicyYes},
	CmdSetFastID:                  {"SET_SAVE_FASTID", "Set FastID persisted", PolicyYes},
	CmdGetFastID:                  {"GET_FASTID", "Get FastID", PolicyIfSingleByte},
	CmdGetAntennaSwitchingSequence: {"GET_ANT_SEQ", "Get antenna switching sequence", PolicyIfSingleByte},
	CmdGetInventoryBuffer:         {"GET_INV_BUF", "Dump inventory buffer", PolicyYes},
	CmdGetAndResetInventoryBuffer: {"GET_RESET_INV_BUF", "Dump and clear inventory buffer", PolicyYes},
	CmdGetInventoryBufferCount:    {"GET_INV_CNT", "Get inventory buffer tag count", PolicyNo},
	CmdResetInventoryBuffer:       {"RESET_INV_BUF", "Clear inventory buffer", PolicyYes},
	CmdWriteBlock:                 {"WRITE_BLOCK", "Block-write tag memory", PolicyYes},
	CmdGetOutputPower8P:           {"GET_POWER_8P", "Get output power (8 ports)", PolicyNo},
	CmdTagMask:                    {"TAG_MASK", "Set/clear/get tag mask", PolicySometimes},
	CmdSetModuleFunction:          {"SET_MODFN", "Set module function", PolicyYes},
	CmdGetModuleFunction:          {"GET_MODFN", "Get module function", PolicyIfSingleByte},
	Cmd6BInventory:                {"6B_INV", "Start ISO 18000-6B inventory", PolicyYes},
	Cmd6BRead:                     {"6B_READ", "Read 6B tag byte", PolicyYes},
	Cmd6BWrite:                    {"6B_WRITE", "Write 6B tag byte", PolicyYes},
	Cmd6BLock:                     {"6B_LOCK", "Lock 6B tag byte", PolicyYes},
	Cmd6BQueryLock:                {"6B_QLOCK", "Query 6B tag byte lock state", PolicyYes},
}

// Known reports whether code is a recognized command.
func Known(code Command) bool {
	_, ok := Descriptors[code]
	return ok
}
