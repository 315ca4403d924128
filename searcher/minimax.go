package searcher

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"duel/experiments/metrics"
	"duel/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// EvaluationFn scores a non-terminal state from player's perspective.
type EvaluationFn func(gs *game.GameState, player int) float64

type Minimax struct {
	depth         int
	adaptiveDepth bool
	goroutines    int
	duration      time.Duration
	nodeBudget    int64
	voluntaryPass bool
	weights       Weights
	evaluate      EvaluationFn
	engine        *game.Engine
	metrics       metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithAdaptiveDepth picks the depth by round, one deeper when the hand is
// nearly spent.
func WithAdaptiveDepth() Option {
	return func(m *Minimax) {
		m.adaptiveDepth = true
	}
}

func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *Minimax) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithNodeBudget(nodes int64) Option {
	return func(m *Minimax) {
		if nodes > 0 {
			m.nodeBudget = nodes
		}
	}
}

// WithVoluntaryPass lets both sides consider passing at inner nodes even when
// they hold playable cards.
func WithVoluntaryPass() Option {
	return func(m *Minimax) {
		m.voluntaryPass = true
	}
}

func WithWeights(weights Weights) Option {
	return func(m *Minimax) {
		m.weights = weights
	}
}

// WithEvaluationFn replaces the weighted heuristic at the depth cutoff.
func WithEvaluationFn(evaluate EvaluationFn) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      DefaultDepth,
		goroutines: 1,
		weights:    DefaultWeights(),
		engine:     game.NewEngine(),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.evaluate == nil {
		weights := m.weights
		m.evaluate = func(gs *game.GameState, player int) float64 {
			return Evaluate(gs, player, weights)
		}
	}
	return m
}

// Decide picks one of valid for the player to move in state. The state is
// only ever read; every explored line runs on a clone.
func (m *Minimax) Decide(state *game.GameState, valid []game.Action) (game.Action, metrics.SearchMetric) {
	switch len(valid) {
	case 0:
		panic("no valid actions to decide between")
	case 1:
		return valid[0], metrics.SearchMetric{}
	}

	candidates := orderMoves(state, withoutPass(valid), true)
	depth := m.depthFor(state)
	s := &searchRun{
		Minimax: m,
		player:  state.CurrentPlayer,
		budget:  m.newBudget(),
	}

	m.metrics.Start(m.goroutines)
	best, reached := candidates[0], 0
	if s.budget == nil {
		best, _ = s.root(state, candidates, depth)
		reached = depth
	} else {
		// Iterative deepening, keeping the last fully completed iteration
		for d := 1; d <= depth; d++ {
			choice, ok := s.root(state, candidates, d)
			if !ok {
				break
			}
			best, reached = choice, d
		}
	}
	m.metrics.SetDepth(reached)
	metric := m.metrics.Complete()

	event := log.Debug().Int("depth", reached)
	if metric.Nodes > 0 { // Counters stay empty without WithMetrics
		event = event.Int("nodes", metric.Nodes).Int("cutoffs", metric.Cutoffs)
	}
	event.Msgf("player %d chose %v", s.player, best)
	return best, metric
}

func (m *Minimax) depthFor(state *game.GameState) int {
	if !m.adaptiveDepth {
		return m.depth
	}
	round := min(max(state.Round, 1), len(roundDepths))
	depth := roundDepths[round-1]
	if len(state.Player().Hand) <= shortHand {
		depth++
	}
	return depth
}

// withoutPass drops Pass whenever another action is available.
func withoutPass(actions []game.Action) []game.Action {
	filtered := make([]game.Action, 0, len(actions))
	for _, action := range actions {
		if !action.IsPass() {
			filtered = append(filtered, action)
		}
	}
	if len(filtered) == 0 {
		return actions
	}
	return filtered
}

// searchRun holds the state of a single decision.
type searchRun struct {
	*Minimax
	player int
	budget *budget
}

// root scores every candidate at depth and returns the first best one. It
// reports false when the budget ran out before the iteration completed.
func (s *searchRun) root(state *game.GameState, candidates []game.Action, depth int) (game.Action, bool) {
	if s.goroutines > 1 {
		return s.parallelRoot(state, candidates, depth)
	}

	best, bestScore := candidates[0], math.Inf(-1)
	alpha := math.Inf(-1)
	for _, action := range candidates {
		if s.budget.exhausted() {
			return best, false
		}
		score := s.child(state, action, depth, alpha, math.Inf(1))
		if s.budget.stopped() {
			return best, false
		}
		if score > bestScore {
			best, bestScore = action, score
		}
		alpha = max(alpha, bestScore)
	}
	return best, true
}

// parallelRoot scores candidates concurrently, each with a full window.
func (s *searchRun) parallelRoot(state *game.GameState, candidates []game.Action, depth int) (game.Action, bool) {
	scores := make([]float64, len(candidates))

	task := make(chan int, len(candidates))
	for i := range candidates {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for n := min(s.goroutines, len(candidates)); n > 0; n-- {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				if s.budget.exhausted() {
					continue
				}
				scores[i] = s.child(state, candidates[i], depth, math.Inf(-1), math.Inf(1))
			}
		}()
	}
	wg.Wait()

	if s.budget.stopped() {
		return candidates[0], false
	}

	best := 0
	for i, score := range scores {
		if score > scores[best] {
			best = i
		}
	}
	return candidates[best], true
}

// child applies action to a clone of node and searches the result.
func (s *searchRun) child(node *game.GameState, action game.Action, depth int, alpha, beta float64) float64 {
	next := node.Clone()
	s.engine.Execute(next, action)
	return s.search(next, depth-1, alpha, beta)
}

func (s *searchRun) search(node *game.GameState, depth int, alpha, beta float64) float64 {
	s.metrics.AddNode()
	s.budget.visit()

	if node.Over {
		s.metrics.AddTerminal()
		return s.terminalScore(node)
	}
	if depth <= 0 {
		s.metrics.AddLeaf()
		return s.evaluate(node, s.player)
	}

	actions := s.engine.ValidActions(node)
	if len(actions) == 1 && actions[0].IsPass() {
		// Forced skip, not a choice
		return s.child(node, actions[0], depth, alpha, beta)
	}
	if !s.voluntaryPass {
		actions = withoutPass(actions)
	}

	maximizing := node.CurrentPlayer == s.player
	actions = orderMoves(node, actions, maximizing)

	if maximizing {
		value := math.Inf(-1)
		for _, action := range actions {
			if s.budget.exhausted() {
				break
			}
			value = max(value, s.child(node, action, depth, alpha, beta))
			alpha = max(alpha, value)
			if beta <= alpha {
				s.metrics.AddCutoff()
				break
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, action := range actions {
		if s.budget.exhausted() {
			break
		}
		value = min(value, s.child(node, action, depth, alpha, beta))
		beta = min(beta, value)
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return value
}

func (s *searchRun) terminalScore(node *game.GameState) float64 {
	switch node.Winner {
	case s.player:
		return WinScore
	case game.NoWinner:
		return DrawScore
	default:
		return LossScore
	}
}

// budget bounds a single decision by wall clock and visited nodes. A nil
// budget never runs out.
type budget struct {
	deadline time.Time
	limit    int64
	nodes    atomic.Int64
	stop     atomic.Bool
}

func (m *Minimax) newBudget() *budget {
	if m.duration <= 0 && m.nodeBudget <= 0 {
		return nil
	}
	b := &budget{limit: m.nodeBudget}
	if m.duration > 0 {
		b.deadline = time.Now().Add(m.duration)
	}
	return b
}

func (b *budget) visit() {
	if b != nil {
		b.nodes.Add(1)
	}
}

// exhausted is checked between sibling evaluations and latches once tripped.
func (b *budget) exhausted() bool {
	if b == nil {
		return false
	}
	if b.stop.Load() {
		return true
	}
	if (b.limit > 0 && b.nodes.Load() >= b.limit) || (!b.deadline.IsZero() && time.Now().After(b.deadline)) {
		b.stop.Store(true)
		return true
	}
	return false
}

func (b *budget) stopped() bool {
	return b != nil && b.stop.Load()
}
