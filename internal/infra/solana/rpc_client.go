// internal/infra/solana/rpc_client.go
package solana

import (
	"context"
	"strings"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"
)

// Solana Devnet RPC endpoint (default)
const DevnetEndpoint = rpc.DevnetRPCEndpoint

// RPCClient is the subset of the JSON-RPC surface the mint flow uses.
// *client.Client satisfies it.
type RPCClient interface {
	GetMinimumBalanceForRentExemption(ctx context.Context, dataLen uint64) (uint64, error)
	GetLatestBlockhash(ctx context.Context) (rpc.GetLatestBlockhashValue, error)
	SendTransaction(ctx context.Context, tx types.Transaction) (string, error)
	GetSignatureStatus(ctx context.Context, signature string) (*rpc.SignatureStatus, error)
	GetAccountInfoWithConfig(ctx context.Context, base58Addr string, cfg client.GetAccountInfoConfig) (client.AccountInfo, error)
	GetBalanceWithConfig(ctx context.Context, base58Addr string, cfg client.GetBalanceConfig) (uint64, error)
	RequestAirdrop(ctx context.Context, base58Addr string, lamports uint64) (string, error)
}

var _ RPCClient = (*client.Client)(nil)

// readCommitment is the level account reads use. It matches the level
// Confirm returns at; the node default (finalized) lags it.
const readCommitment = rpc.CommitmentConfirmed

// NewRPCClient connects to endpoint, falling back to devnet when empty.
func NewRPCClient(endpoint string) *client.Client {
	ep := strings.TrimSpace(endpoint)
	if ep == "" {
		ep = DevnetEndpoint
	}
	return client.NewClient(ep)
}

// ExplorerTxURL links a signature on the public explorer.
func ExplorerTxURL(signature, cluster string) string {
	u := "https://explorer.solana.com/tx/" + signature
	if c := strings.TrimSpace(cluster); c != "" && c != "mainnet-beta" {
		u += "?cluster=" + c
	}
	return u
}

func maskShort(s string) string {
	t := strings.TrimSpace(s)
	if t == "" {
		return ""
	}
	if len(t) <= 10 {
		return t
	}
	return t[:4] + "***" + t[len(t)-4:]
}
