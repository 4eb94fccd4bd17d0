package backends

import "context"

// Mock never touches the network.
type Mock struct{}

func (Mock) Send(ctx context.Context, _, _, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return MockReply, nil
}
