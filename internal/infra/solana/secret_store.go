// internal/infra/solana/secret_store.go
package solana

import (
	"context"
	"errors"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	smpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrSecretNotFound    = errors.New("secret_store: secret not found")
	ErrInvalidSecretName = errors.New("secret_store: invalid secret version name")
)

// SecretVersionName is a parsed "projects/<p>/secrets/<s>/versions/<v>".
type SecretVersionName struct {
	Project string
	Secret  string
	Version string
}

func ParseSecretVersionName(name string) (SecretVersionName, error) {
	parts := strings.Split(strings.Trim(strings.TrimSpace(name), "/"), "/")
	if len(parts) == 4 {
		parts = append(parts, "versions", "latest")
	}
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "secrets" || parts[4] != "versions" {
		return SecretVersionName{}, fmt.Errorf("%w: %q", ErrInvalidSecretName, name)
	}
	n := SecretVersionName{Project: parts[1], Secret: parts[3], Version: parts[5]}
	if n.Project == "" || n.Secret == "" || n.Version == "" {
		return SecretVersionName{}, fmt.Errorf("%w: %q", ErrInvalidSecretName, name)
	}
	return n, nil
}

func (n SecretVersionName) Parent() string { return "projects/" + n.Project }

func (n SecretVersionName) SecretPath() string {
	return n.Parent() + "/secrets/" + n.Secret
}

func (n SecretVersionName) String() string {
	return n.SecretPath() + "/versions/" + n.Version
}

// SecretBackend is the Secret Manager surface the store needs.
type SecretBackend interface {
	Access(ctx context.Context, name string) ([]byte, error)
	Create(ctx context.Context, parent, secretID string) error
	AddVersion(ctx context.Context, secretPath string, payload []byte) error
	Close() error
}

// SecretStore keeps the payer keypair in Secret Manager.
type SecretStore struct {
	backend SecretBackend
}

func NewSecretStore(backend SecretBackend) *SecretStore {
	return &SecretStore{backend: backend}
}

// NewGCPSecretStore dials Secret Manager. credentialsFile may be empty
// to use application default credentials.
func NewGCPSecretStore(ctx context.Context, credentialsFile string) (*SecretStore, error) {
	var opts []option.ClientOption
	if cf := strings.TrimSpace(credentialsFile); cf != "" {
		opts = append(opts, option.WithCredentialsFile(cf))
	}
	c, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("secretmanager.NewClient: %w", err)
	}
	return NewSecretStore(&gcpSecretBackend{c: c}), nil
}

func (s *SecretStore) Close() error {
	if s == nil || s.backend == nil {
		return nil
	}
	return s.backend.Close()
}

// Load reads the keypair stored at name.
func (s *SecretStore) Load(ctx context.Context, name string) ([]byte, error) {
	n, err := ParseSecretVersionName(name)
	if err != nil {
		return nil, err
	}
	data, err := s.backend.Access(ctx, n.String())
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", ErrSecretNotFound, n.String())
		}
		return nil, fmt.Errorf("AccessSecretVersion %s: %w", n.String(), err)
	}
	return data, nil
}

// Save stores payload as a new version, creating the secret if needed.
func (s *SecretStore) Save(ctx context.Context, name string, payload []byte) error {
	n, err := ParseSecretVersionName(name)
	if err != nil {
		return err
	}
	if err := s.backend.Create(ctx, n.Parent(), n.Secret); err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("CreateSecret %s: %w", n.SecretPath(), err)
	}
	if err := s.backend.AddVersion(ctx, n.SecretPath(), payload); err != nil {
		return fmt.Errorf("AddSecretVersion %s: %w", n.SecretPath(), err)
	}
	return nil
}

type gcpSecretBackend struct {
	c *secretmanager.Client
}

func (b *gcpSecretBackend) Access(ctx context.Context, name string) ([]byte, error) {
	res, err := b.c.AccessSecretVersion(ctx, &smpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return nil, err
	}
	return res.GetPayload().GetData(), nil
}

func (b *gcpSecretBackend) Create(ctx context.Context, parent, secretID string) error {
	_, err := b.c.CreateSecret(ctx, &smpb.CreateSecretRequest{
		Parent:   parent,
		SecretId: secretID,
		Secret: &smpb.Secret{
			Replication: &smpb.Replication{
				Replication: &smpb.Replication_Automatic_{
					Automatic: &smpb.Replication_Automatic{},
				},
			},
		},
	})
	return err
}

func (b *gcpSecretBackend) AddVersion(ctx context.Context, secretPath string, payload []byte) error {
	_, err := b.c.AddSecretVersion(ctx, &smpb.AddSecretVersionRequest{
		Parent:  secretPath,
		Payload: &smpb.SecretPayload{Data: payload},
	})
	return err
}

func (b *gcpSecretBackend) Close() error {
	return b.c.Close()
}
