// internal/infra/solana/fake_rpc_test.go
package solana

import (
	"context"
	"sync"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"
)

var ctx = context.Background()

const testBlockhash = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"

// fakeRPC is an in-memory RPCClient. Every sent transaction confirms
// immediately unless statusFn says otherwise. With finalizedLag set, stored
// accounts and balances are visible at confirmed but not yet at finalized,
// the window right after Confirm returns.
type fakeRPC struct {
	mu sync.Mutex

	rent     uint64
	balances map[string]uint64
	accounts map[string][]byte

	sent     []types.Transaction
	airdrops []uint64

	sendErr    error
	airdropErr error
	statusFn   func(sig string) (*rpc.SignatureStatus, error)
	// airdropCredit is added to the balance on RequestAirdrop.
	airdropCredit bool

	finalizedLag bool
	reads        []rpc.Commitment
}

func newFakeRPC() *fakeRPC {
	return &fakeRPC{
		rent:          1_461_600,
		balances:      map[string]uint64{},
		accounts:      map[string][]byte{},
		airdropCredit: true,
	}
}

func confirmedStatus() *rpc.SignatureStatus {
	c := rpc.CommitmentConfirmed
	return &rpc.SignatureStatus{ConfirmationStatus: &c}
}

func (f *fakeRPC) GetMinimumBalanceForRentExemption(context.Context, uint64) (uint64, error) {
	return f.rent, nil
}

func (f *fakeRPC) GetLatestBlockhash(context.Context) (rpc.GetLatestBlockhashValue, error) {
	return rpc.GetLatestBlockhashValue{Blockhash: testBlockhash, LatestValidBlockHeight: 1}, nil
}

func (f *fakeRPC) SendTransaction(_ context.Context, tx types.Transaction) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sent = append(f.sent, tx)
	return "sig-" + string(rune('a'+len(f.sent)-1)), nil
}

func (f *fakeRPC) GetSignatureStatus(_ context.Context, sig string) (*rpc.SignatureStatus, error) {
	if f.statusFn != nil {
		return f.statusFn(sig)
	}
	return confirmedStatus(), nil
}

// visible records the read and reports whether confirmed state is returned.
func (f *fakeRPC) visible(c rpc.Commitment) bool {
	f.reads = append(f.reads, c)
	if !f.finalizedLag {
		return true
	}
	return c == rpc.CommitmentConfirmed || c == rpc.CommitmentProcessed
}

func (f *fakeRPC) GetAccountInfoWithConfig(_ context.Context, addr string, cfg client.GetAccountInfoConfig) (client.AccountInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.visible(cfg.Commitment) {
		return client.AccountInfo{}, nil
	}
	return client.AccountInfo{Data: f.accounts[addr]}, nil
}

func (f *fakeRPC) GetBalanceWithConfig(_ context.Context, addr string, cfg client.GetBalanceConfig) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.visible(cfg.Commitment) {
		return 0, nil
	}
	return f.balances[addr], nil
}

func (f *fakeRPC) RequestAirdrop(_ context.Context, addr string, lamports uint64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.airdropErr != nil {
		return "", f.airdropErr
	}
	f.airdrops = append(f.airdrops, lamports)
	if f.airdropCredit {
		f.balances[addr] += lamports
	}
	return "airdrop-sig", nil
}

func (f *fakeRPC) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}
