package monostack

// Spanner computes stock spans over a live price stream. The span of a
// price is the number of consecutive prices ending at it (itself included)
// that are ≤ it.
//
// Each frame holds a price and the span it absorbed, so a pop folds the
// popped span into the incoming one instead of rescanning history.
// The zero value is ready to use.
type Spanner struct {
	st Stack
}

// Next feeds price and returns its span.
// Complexity: amortized O(1).
func (s *Spanner) Next(price int) int {
	span := 1
	s.st.PopWhile(
		func(f Frame) bool { return f.Value <= price },
		func(f Frame) { span += f.Aux },
	)
	s.st.Push(Frame{Value: price, Aux: span})

	return span
}

// StockSpan returns the span of every price in prices. It keeps indices on
// the stack rather than spans; the answers equal those of feeding prices
// one by one to a Spanner.
//
//	StockSpan([]int{100, 80, 60, 70, 60, 75, 85}) == []int{1, 1, 1, 2, 1, 4, 6}
//
// Complexity: O(n) time, O(n) space.
func StockSpan(prices []int) []int {
	out := make([]int, len(prices))
	st := NewStack(len(prices))
	for i, p := range prices {
		st.PopWhile(func(f Frame) bool { return f.Value <= p }, nil)
		if f, ok := st.Top(); ok {
			out[i] = i - f.Aux // distance to the previous strictly greater price
		} else {
			out[i] = i + 1 // every earlier price is ≤ p
		}
		st.Push(Frame{Value: p, Aux: i})
	}

	return out
}

// PrevGreaterStream answers previous-greater queries over a live stream.
// The zero value is ready to use.
type PrevGreaterStream struct {
	st  Stack
	pos int
}

// Next feeds v and returns the nearest earlier value strictly greater than
// v, or None. Feeding a slice element by element yields PrevGreater of it.
// Complexity: amortized O(1).
func (p *PrevGreaterStream) Next(v int) int {
	p.st.PopWhile(func(f Frame) bool { return f.Value <= v }, nil)
	ans := None
	if f, ok := p.st.Top(); ok {
		ans = f.Value
	}
	p.st.Push(Frame{Value: v, Aux: p.pos})
	p.pos++

	return ans
}

// Seen returns how many values have been fed.
func (p *PrevGreaterStream) Seen() int { return p.pos }
