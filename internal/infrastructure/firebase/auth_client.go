package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"
)

type FirebaseAuthClient struct {
	client *auth.Client
	apiKey string
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
		apiKey: apiKey,
	}
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *FirebaseAuthClient) GenerateToken(ctx context.Context, uid string) (string, error) {
	token, err := f.client.CustomToken(ctx, uid)
	if err != nil {
		return "", err
	}

	return token, nil
}

// SetAdminClaim flags the account as an operator. Admin routes check this
// claim on the verified ID token.
func (f *FirebaseAuthClient) SetAdminClaim(ctx context.Context, uid string, isAdmin bool) error {
	return f.client.SetCustomUserClaims(ctx, uid, map[string]interface{}{
		"admin": isAdmin,
	})
}

func (f *FirebaseAuthClient) TestConnection(ctx context.Context) error {
	// One-result iteration is the cheapest call that exercises the credentials
	iter := f.client.Users(ctx, "")
	_, err := iter.Next()
	if err != nil && err != iterator.Done {
		return err
	}

	return nil
}
