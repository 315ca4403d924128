package searcher

// Hyperparameters for minimax

// Terminal scores dominate every heuristic value
const WinScore = 10000.0
const LossScore = -WinScore
const DrawScore = 0.0

// Unit strength bands used by move ordering and evaluation
const HighStrength = 7
const MidStrength = 4

const DefaultDepth = 4

// Adaptive depth: base depth per round, plus one when the hand is nearly spent
var roundDepths = [...]int{3, 4, 5}

const shortHand = 2
