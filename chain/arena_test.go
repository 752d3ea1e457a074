package chain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/linearkit/chain"
)

type ArenaSuite struct {
	suite.Suite
	a *chain.Arena
}

func (s *ArenaSuite) SetupTest() {
	s.a = chain.NewArena(chain.WithCapacity(4))
}

func (s *ArenaSuite) TestNewStartsDetached() {
	require := require.New(s.T())
	id := s.a.New(7)
	require.True(s.a.Live(id))
	require.Equal(7, s.a.Value(id))
	require.Equal(chain.Nil, s.a.Next(id), "fresh node has no successor")
	require.Equal(chain.Nil, s.a.Prev(id), "fresh node has no predecessor")
	require.Equal(1, s.a.Len())
}

func (s *ArenaSuite) TestFreeRecyclesSlot() {
	require := require.New(s.T())
	x := s.a.New(1)
	y := s.a.New(2)
	s.a.SetNext(x, y)

	s.a.Free(y)
	require.False(s.a.Live(y), "freed node is no longer live")
	require.Equal(1, s.a.Len())

	// The freed slot is handed out again
	z := s.a.New(3)
	require.Equal(y, z)
	require.Equal(3, s.a.Value(z))
	require.Equal(2, s.a.Cap(), "no growth while a free slot exists")
}

func (s *ArenaSuite) TestFreeNilIsNoop() {
	s.a.Free(chain.Nil)
	s.Require().Equal(0, s.a.Len())
}

func (s *ArenaSuite) TestLinkSetsBothDirections() {
	require := require.New(s.T())
	x, y := s.a.New(1), s.a.New(2)
	s.a.Link(x, y)
	require.Equal(y, s.a.Next(x))
	require.Equal(x, s.a.Prev(y))

	// Linking to Nil only clears the forward link
	s.a.Link(y, chain.Nil)
	require.Equal(chain.Nil, s.a.Next(y))
}

func (s *ArenaSuite) TestInvalidIDPanics() {
	require := require.New(s.T())
	x := s.a.New(1)
	s.a.Free(x)
	require.Panics(func() { s.a.Value(x) }, "reading a freed node must panic")
	require.Panics(func() { s.a.Next(42) }, "out-of-range id must panic")
	require.Panics(func() { s.a.SetNext(s.a.New(2), 99) }, "linking to an invalid id must panic")
}

func TestArenaSuite(t *testing.T) {
	suite.Run(t, new(ArenaSuite))
}

func TestWithCapacity_NegativePanics(t *testing.T) {
	require.Panics(t, func() { chain.WithCapacity(-1) })
}
