package proto

// AntennaID identifies one of the reader's 8 antenna ports, or the
// disabled sentinel used in switching-sequence slots.
type AntennaID byte

const (
	Antenna1  AntennaID = 0
	Antenna2  AntennaID = 1
	Antenna3  AntennaID = 2
	Antenna4  AntennaID = 3
	Antenna5  AntennaID = 4
	Antenna6  AntennaID = 5
	Antenna7  AntennaID = 6
	Antenna8  AntennaID = 7
	AntennaDisabled AntennaID = 0xFF
)

// MemoryBank selects a C1G2 tag memory bank for read/write.
type MemoryBank byte

const (
	BankReserved MemoryBank = 0
	BankEPC      MemoryBank = 1
	BankTID      MemoryBank = 2
	BankUser     MemoryBank = 3
)

// LockMemoryBank selects a bank for a lock operation; distinct from
// MemoryBank because it also covers the password banks.
type LockMemoryBank byte

const (
	LockBankReserved  LockMemoryBank = 0
	LockBankUser      LockMemoryBank = 1
	LockBankTID       LockMemoryBank = 2
	LockBankEPC       LockMemoryBank = 3
	LockBankAccessPwd LockMemoryBank = 4
	LockBankKillPwd   LockMemoryBank = 5
)

// LockType is the lock action applied to a LockMemoryBank.
type LockType byte

const (
	LockOpen           LockType = 0
	LockLock           LockType = 1
	LockPermanentOpen  LockType = 2
	LockPermanentLock  LockType = 3
)

// BeeperMode selects when the reader sounds its beeper.
type BeeperMode byte

const (
	BeeperQuiet     BeeperMode = 0
	BeeperInventory BeeperMode = 1
	BeeperTag       BeeperMode = 2
)

// Session is a C1G2 inventory session identifier.
type Session byte

const (
	Session0 Session = 0
	Session1 Session = 1
	Session2 Session = 2
	Session3 Session = 3
)

// InventoriedFlag is the C1G2 inventoried flag targeted by session
// inventory (A or B).
type InventoriedFlag byte

const (
	FlagA InventoriedFlag = 0
	FlagB InventoriedFlag = 1
)

// RFLinkProfile selects one of the reader's RF link timing profiles.
type RFLinkProfile byte

const (
	ProfileP0 RFLinkProfile = 0xD0
	ProfileP1 RFLinkProfile = 0xD1
	ProfileP2 RFLinkProfile = 0xD2
	ProfileP3 RFLinkProfile = 0xD3
)

// ValidProfile reports whether p is one of the known RF link profiles;
// GET_RF_LINK_PROFILE's SOMETIMES error policy hinges on this (§4.2).
func ValidProfile(p byte) bool {
	switch RFLinkProfile(p) {
	case ProfileP0, ProfileP1, ProfileP2, ProfileP3:
		return true
	default:
		return false
	}
}

// Region selects the reader's regulatory frequency plan.
type Region byte

const (
	RegionFCC    Region = 1
	RegionETSI   Region = 2
	RegionCHN    Region = 3
	RegionCustom Region = 4
)

// RegionDefaults returns the default start/end frequency table indexes
// for a fixed (non-custom) region, per §4.6.
func RegionDefaults(r Region) (start, end int, ok bool) {
	switch r {
	case RegionFCC:
		return 7, 59, true
	case RegionETSI:
		return 0, 6, true
	case RegionCHN:
		return 43, 53, true
	default:
		return 0, 0, false
	}
}

// FastID selects whether Monza FastID/FastTID is enabled.
type FastID byte

const (
	FastIDDisabled FastID = 0x00
	FastIDEnabled  FastID = 0x8D
)

// ModuleFunction selects the reader's boot-time operating mode.
type ModuleFunction byte

const (
	ModuleFunctionStandard ModuleFunction = 0
	ModuleFunctionWiegand  ModuleFunction = 1
	ModuleFunctionBurnIn   ModuleFunction = 2
)

// BaudCode is the on-wire code for a UART baud rate, as used by
// SET_BAUD.
type BaudCode byte

const (
	Baud38400  BaudCode = 3
	Baud115200 BaudCode = 4
)

// BaudRateCode maps a baud rate in bits/second to its wire code.
func BaudRateCode(bps int) (BaudCode, bool) {
	switch bps {
	case 38400:
		return Baud38400, true
	case 115200:
		return Baud115200, true
	default:
		return 0, false
	}
}

// GPIOLevel is a digital pin level.
type GPIOLevel byte

const (
	GPIOLow  GPIOLevel = 0
	GPIOHigh GPIOLevel = 1
)
