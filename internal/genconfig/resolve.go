package genconfig

import "context"

// optional is a pre-supplied value that may be absent.
type optional[T any] struct {
	value T
	set   bool
}

func some[T any](v T) optional[T] { return optional[T]{value: v, set: true} }

func none[T any]() optional[T] { return optional[T]{} }

// optionalString treats the empty string as "not supplied".
func optionalString(s string) optional[string] {
	if s == "" {
		return none[string]()
	}
	return some(s)
}

// resolveField is the one rule every step applies: a pre-supplied value that
// passes validate wins without asking; otherwise ask is called until its
// answer passes validate. Rejections are reported through the asker and never
// end the build. A nil validate accepts everything.
func resolveField[T any](ctx context.Context, b *Builder, pre optional[T], ask func(context.Context) (T, error), validate func(T) error) (T, error) {
	if pre.set {
		if validate == nil {
			return pre.value, nil
		}
		err := validate(pre.value)
		if err == nil {
			return pre.value, nil
		}
		b.info(ctx, "Ignoring pre-supplied value: "+err.Error())
	}

	for {
		answer, err := ask(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		if validate == nil {
			return answer, nil
		}
		if err := validate(answer); err != nil {
			b.info(ctx, err.Error())
			continue
		}
		return answer, nil
	}
}
