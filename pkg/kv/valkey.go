package kv

import (
	"context"

	valkey "github.com/valkey-io/valkey-go"
)

// Valkey implements Store using a Valkey server.
type Valkey struct {
	c valkey.Client
}

func NewValkey(addr, password string) (*Valkey, error) {
	opts := valkey.ClientOption{
		InitAddress: []string{addr},
	}
	if password != "" {
		opts.Username = "default"
		opts.Password = password
	}
	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, err
	}
	return &Valkey{c: client}, nil
}

func (v *Valkey) Get(ctx context.Context, key string) (string, bool, error) {
	res := v.c.Do(ctx, v.c.B().Get().Key(key).Build())
	if err := res.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return "", false, nil
		}
		return "", false, err
	}
	str, err := res.ToString()
	if err != nil {
		return "", false, err
	}
	return str, true, nil
}

func (v *Valkey) Set(ctx context.Context, key string, val string) error {
	return v.c.Do(ctx, v.c.B().Set().Key(key).Value(val).Build()).Error()
}

func (v *Valkey) Delete(ctx context.Context, key string) error {
	return v.c.Do(ctx, v.c.B().Del().Key(key).Build()).Error()
}

func (v *Valkey) DeletePrefix(ctx context.Context, prefix string) error {
	res := v.c.Do(ctx, v.c.B().Keys().Pattern(prefix+"*").Build())
	if err := res.Error(); err != nil {
		return err
	}
	keys, err := res.AsStrSlice()
	if err != nil {
		return err
	}
	var lastErr error
	for _, k := range keys {
		if err := v.Delete(ctx, k); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

func (v *Valkey) Close() { v.c.Close() }
