package proto

// ErrorCode is a one-byte reader-reported protocol error code.
type ErrorCode byte

// Protocol error codes from the vendor wire format.
const (
	ErrSuccess               ErrorCode = 0x10
	ErrFail                  ErrorCode = 0x11
	ErrMCUReset              ErrorCode = 0x20
	ErrCWOn                  ErrorCode = 0x21
	ErrAntennaMissing        ErrorCode = 0x22
	ErrWriteFlash            ErrorCode = 0x23
	ErrReadFlash             ErrorCode = 0x24
	ErrSetPower              ErrorCode = 0x25
	ErrTagInventory          ErrorCode = 0x31
	ErrTagRead               ErrorCode = 0x32
	ErrTagWrite              ErrorCode = 0x33
	ErrTagLock               ErrorCode = 0x34
	ErrTagKill               ErrorCode = 0x35
	ErrNoTag                 ErrorCode = 0x36
	ErrInventoryOKAccessFail ErrorCode = 0x37
	ErrBufferEmpty           ErrorCode = 0x38
	ErrNXPFail               ErrorCode = 0x3C
	ErrAccessOrPassword      ErrorCode = 0x40
	// ErrParameterInvalidLo and ErrParameterInvalidHi bound the
	// PARAMETER_INVALID range 0x41..0x4F.
	ErrParameterInvalidLo ErrorCode = 0x41
	ErrParameterInvalidHi ErrorCode = 0x4F
	ErrPLLFail            ErrorCode = 0x52
	ErrRFChipNoResponse   ErrorCode = 0x53
	ErrOutputPowerLow     ErrorCode = 0x57
	ErrGetReturnLossFail  ErrorCode = 0xEE
)

// IsParameterInvalid reports whether e falls in the PARAMETER_INVALID
// range 0x41..0x4F.
func IsParameterInvalid(e ErrorCode) bool {
	return e >= ErrParameterInvalidLo && e <= ErrParameterInvalidHi
}

var errorNames = map[ErrorCode]string{
	ErrSuccess:               "SUCCESS",
	ErrFail:                  "FAIL",
	ErrMCUReset:              "MCU_RESET_ERROR",
	ErrCWOn:                  "CW_ON_ERROR",
	ErrAntennaMissing:        "ANTENNA_MISSING",
	ErrWriteFlash:            "WRITE_FLASH",
	ErrReadFlash:             "READ_FLASH",
	ErrSetPower:              "SET_POWER_ERR",
	ErrTagInventory:          "TAG_INVENTORY_ERR",
	ErrTagRead:               "TAG_READ_ERR",
	ErrTagWrite:              "TAG_WRITE_ERR",
	ErrTagLock:               "TAG_LOCK_ERR",
	ErrTagKill:               "TAG_KILL_ERR",
	ErrNoTag:                 "NO_TAG",
	ErrInventoryOKAccessFail: "INV_OK_ACCESS_FAIL",
	ErrBufferEmpty:           "BUFFER_IS_EMPTY",
	ErrNXPFail:               "NXP_FAIL",
	ErrAccessOrPassword:      "ACCESS_OR_PASSWORD",
	ErrPLLFail:               "PLL_FAIL",
	ErrRFChipNoResponse:      "RF_CHIP_NO_RESPONSE",
	ErrOutputPowerLow:        "OUTPUT_POWER_LOW",
	ErrGetReturnLossFail:     "FAIL_GET_RF_PORT_RETURN_LOSS",
}

// String renders e using its vendor name when known, PARAMETER_INVALID
// for the 0x41..0x4F range, and UNKNOWN_ERROR otherwise.
func (e ErrorCode) String() string {
	if name, ok := errorNames[e]; ok {
		return name
	}
	if IsParameterInvalid(e) {
		return "PARAMETER_INVALID"
	}
	return "UNKNOWN_ERROR"
}
