// Package txbuild assembles a legacy Solana transaction containing a
// single SPL Token Transfer instruction, with two signature slots left
// for the fee payer (facilitator) and the device to fill in.
package txbuild

import (
	"errors"
	"fmt"

	"github.com/selesy/x402-svm-buyer/internal/solana/wire"
)

const (
	numRequiredSignatures = 2
	numReadonlySigned     = 1 // the payer: authorizes the transfer, doesn't mutate its own lamports
	numReadonlyUnsigned   = 1 // the token program
	accountCount          = 3
	tokenProgramOpcodeLen = 9 // 1 opcode byte + 8-byte LE amount

	tokenTransferOpcode = 0x03

	feePayerSlot = 0
	deviceSlot   = 1

	sigSize = 64
	pkSize  = 32
)

// ErrZeroAmount is returned when the caller attempts to build a
// transfer for a zero amount; spec.md requires this to be rejected
// before any RPC or signing work is attempted.
var ErrZeroAmount = errors.New("txbuild: amount must be non-zero")

// Params describes the single SPL Transfer instruction to assemble.
// SourceATA and DestATA must already be resolved by the pda package
// against the correct TokenProgram before calling Build.
type Params struct {
	FeePayer     [32]byte
	Payer        [32]byte
	SourceATA    [32]byte
	DestATA      [32]byte
	TokenProgram [32]byte
	Amount       uint64
	Blockhash    [32]byte
}

// Transaction is a fully assembled, not-yet-(fully)-signed legacy
// Solana transaction buffer. Slot 0 (fee payer) stays zeroed; slot 1
// (device) is filled by SetDeviceSignature after the caller signs
// Message().
type Transaction struct {
	buf []byte
}

// Build assembles the account table
// [fee_payer, payer, source_ata, dest_ata, token_program], the
// message header {2, 1, 1}, and the single Transfer instruction
// referencing program index 4 with account indices [2, 3, 1]
// (source, dest, owner). Both signature slots are zeroed; the caller
// must sign Message() and call SetDeviceSignature with the result.
func Build(p Params) (*Transaction, error) {
	if p.Amount == 0 {
		return nil, ErrZeroAmount
	}

	instrData := [tokenProgramOpcodeLen]byte{tokenTransferOpcode}
	putU64LEInto(instrData[1:], p.Amount)

	capacity := 1 + sigSize + sigSize + // shortvec sig count + 2 signature slots
		3 + // message header
		wire.ShortVecLen(5) + 5*pkSize + // account table
		pkSize + // recent blockhash
		wire.ShortVecLen(1) + // instruction count
		1 + wire.ShortVecLen(accountCount) + accountCount + // program index + account indices
		wire.ShortVecLen(len(instrData)) + len(instrData) // instruction data

	w := wire.NewWriter(capacity)

	if err := w.PutShortVecLen(numRequiredSignatures); err != nil {
		return nil, err
	}
	if err := w.PutBytes(make([]byte, sigSize)); err != nil { // slot 0: fee payer, zeroed
		return nil, err
	}
	if err := w.PutBytes(make([]byte, sigSize)); err != nil { // slot 1: device, filled later
		return nil, err
	}

	if err := w.PutU8(numRequiredSignatures); err != nil {
		return nil, err
	}
	if err := w.PutU8(numReadonlySigned); err != nil {
		return nil, err
	}
	if err := w.PutU8(numReadonlyUnsigned); err != nil {
		return nil, err
	}

	accounts := [][32]byte{p.FeePayer, p.Payer, p.SourceATA, p.DestATA, p.TokenProgram}
	if err := w.PutShortVecLen(len(accounts)); err != nil {
		return nil, err
	}
	for _, acct := range accounts {
		if err := w.PutBytes(acct[:]); err != nil {
			return nil, err
		}
	}

	if err := w.PutBytes(p.Blockhash[:]); err != nil {
		return nil, err
	}

	if err := w.PutShortVecLen(1); err != nil { // one instruction
		return nil, err
	}
	if err := w.PutU8(4); err != nil { // program index: token program
		return nil, err
	}
	if err := w.PutShortVecLen(accountCount); err != nil {
		return nil, err
	}
	for _, idx := range []byte{2, 3, 1} { // source ATA, dest ATA, owner
		if err := w.PutU8(idx); err != nil {
			return nil, err
		}
	}
	if err := w.PutShortVecLen(len(instrData)); err != nil {
		return nil, err
	}
	if err := w.PutBytes(instrData[:]); err != nil {
		return nil, err
	}

	return &Transaction{buf: w.Bytes()}, nil
}

func putU64LEInto(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// Message returns the byte range the device must sign: everything
// after the two signature slots, through the end of the buffer.
func (t *Transaction) Message() []byte {
	return t.buf[1+sigSize+sigSize:]
}

// SetDeviceSignature writes sig into signature slot 1. Slot 0 remains
// zeroed for the facilitator to fill during settlement.
func (t *Transaction) SetDeviceSignature(sig []byte) error {
	if len(sig) != sigSize {
		return fmt.Errorf("txbuild: signature must be %d bytes, got %d", sigSize, len(sig))
	}

	offset := 1 + deviceSlot*sigSize
	copy(t.buf[offset:offset+sigSize], sig)

	return nil
}

// Bytes returns the complete transaction buffer, including both
// signature slots in their current state.
func (t *Transaction) Bytes() []byte {
	return t.buf
}
