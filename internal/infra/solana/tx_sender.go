// internal/infra/solana/tx_sender.go
package solana

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"
	"go.uber.org/zap"
)

var (
	ErrTxNotConfigured  = errors.New("tx_sender: not configured")
	ErrTxFailed         = errors.New("tx_sender: transaction failed")
	ErrTxConfirmTimeout = errors.New("tx_sender: confirmation timed out")
)

const (
	defaultConfirmTimeout = 90 * time.Second
	defaultPollInterval   = time.Second
)

// TxSender builds, submits and confirms transactions.
type TxSender struct {
	RPC     RPCClient
	Cluster string

	ConfirmTimeout time.Duration
	PollInterval   time.Duration

	log *zap.Logger
}

func NewTxSender(c RPCClient, cluster string, confirmTimeout time.Duration, log *zap.Logger) *TxSender {
	if confirmTimeout <= 0 {
		confirmTimeout = defaultConfirmTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &TxSender{
		RPC:            c,
		Cluster:        cluster,
		ConfirmTimeout: confirmTimeout,
		PollInterval:   defaultPollInterval,
		log:            log.Named("solana"),
	}
}

// Send signs instructions with signers (signers[0] pays the fee), submits
// the transaction and blocks until it is confirmed.
func (s *TxSender) Send(ctx context.Context, label string, signers []types.Account, ins []types.Instruction) (string, error) {
	if s == nil || s.RPC == nil {
		return "", ErrTxNotConfigured
	}
	if len(signers) == 0 {
		return "", fmt.Errorf("%s: no signers", label)
	}

	recent, err := s.RPC.GetLatestBlockhash(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: GetLatestBlockhash: %w", label, err)
	}

	tx, err := types.NewTransaction(types.NewTransactionParam{
		Signers: signers,
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        signers[0].PublicKey,
			RecentBlockhash: recent.Blockhash,
			Instructions:    ins,
		}),
	})
	if err != nil {
		return "", fmt.Errorf("%s: NewTransaction: %w", label, err)
	}

	sig, err := s.RPC.SendTransaction(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("%s: SendTransaction: %w", label, err)
	}
	s.log.Debug("submitted", zap.String("op", label), zap.String("tx", maskShort(sig)))

	if err := s.Confirm(ctx, sig); err != nil {
		return sig, fmt.Errorf("%s: %w", label, err)
	}
	s.log.Info("confirmed",
		zap.String("op", label),
		zap.String("tx", sig),
		zap.String("explorer", ExplorerTxURL(sig, s.Cluster)),
	)
	return sig, nil
}

// Confirm polls the signature until it reaches confirmed commitment,
// fails on-chain, or ConfirmTimeout elapses.
func (s *TxSender) Confirm(ctx context.Context, sig string) error {
	if s == nil || s.RPC == nil {
		return ErrTxNotConfigured
	}
	parent := ctx
	ctx, cancel := context.WithTimeout(parent, s.ConfirmTimeout)
	defer cancel()

	interval := s.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		st, err := s.RPC.GetSignatureStatus(ctx, sig)
		if err != nil {
			if ctx.Err() != nil {
				return confirmAborted(parent, sig)
			}
			return fmt.Errorf("GetSignatureStatus: %w", err)
		}
		if st != nil {
			if st.Err != nil {
				return fmt.Errorf("%w: tx=%s err=%v", ErrTxFailed, sig, st.Err)
			}
			if isConfirmed(st) {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return confirmAborted(parent, sig)
		case <-ticker.C:
		}
	}
}

// confirmAborted reports a cancelled caller as such; only the poll
// deadline itself is a timeout.
func confirmAborted(parent context.Context, sig string) error {
	if err := parent.Err(); err != nil {
		return fmt.Errorf("confirm tx=%s: %w", sig, err)
	}
	return fmt.Errorf("%w: tx=%s", ErrTxConfirmTimeout, sig)
}

func isConfirmed(st *rpc.SignatureStatus) bool {
	if st.ConfirmationStatus == nil {
		return false
	}
	switch *st.ConfirmationStatus {
	case rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
		return true
	}
	return false
}
