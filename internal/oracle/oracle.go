// Package oracle derives, from a gold graph and a working graph built
// from only its tokens, the canonical action
// sequence that reconstructs the gold structure. The oracle never errors:
// for any well-formed gold graph it terminates by emitting a stop action.
package oracle

import (
	"github.com/qtreebank/goparser/internal/action"
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
	"github.com/qtreebank/goparser/internal/subgraph"
)

// Oracle replays a gold graph against a token-only working graph,
// producing the actions that reconstruct the gold structure on the
// working graph.
type Oracle struct {
	expected *graph.SyntaxGraph
	output   *graph.SyntaxGraph
	parser   *action.Parser
	nodeMap  map[*graph.SyntaxNode]*graph.SyntaxNode
}

// New returns an Oracle that will drive output (normally
// expected.OnlyTokens()) towards expected.
func New(expected, output *graph.SyntaxGraph) *Oracle {
	o := &Oracle{
		expected: expected,
		output:   output,
		parser:   action.New(output),
		nodeMap:  make(map[*graph.SyntaxNode]*graph.SyntaxNode),
	}
	o.buildNodeMap()
	return o
}

func (o *Oracle) buildNodeMap() {
	index := 0
	for _, n := range o.expected.SegmentNodes {
		if n.Word.Type == morph.Elided {
			continue
		}
		outputNode := o.output.SegmentNodes[index]
		index++
		o.nodeMap[outputNode] = n
	}
}

// ExpectedActions replays the oracle to completion, returning the full
// action sequence and leaving the working graph (and its Stack/Queue)
// exactly as the last action left it.
func (o *Oracle) ExpectedActions() []action.ParserAction {
	var actions []action.ParserAction
	for {
		a := o.next()
		if a == nil {
			break
		}
		actions = append(actions, *a)
		if err := o.parser.Execute(*a); err != nil {
			// A well-formed gold graph never reaches here; surfacing a
			// panic would hide a real bug in either the oracle or the
			// gold data, so we stop instead, matching "never errors".
			break
		}
	}
	return actions
}

func (o *Oracle) stack(depth int) *graph.SyntaxNode { return o.parser.Stack.Node(depth) }

func (o *Oracle) next() *action.ParserAction {
	s0 := o.stack(0)
	s1 := o.stack(1)

	if s0 != nil && s1 != nil {
		if edge := o.expectedEdge(s0, s1); edge != nil && o.output.Edge(s0, s1) == nil {
			if edge.Dependent == o.expectedNode(s0) && o.output.Head(s0) == nil {
				a := action.RightAction(edge.Relation)
				return &a
			}
			if o.output.Head(s1) == nil {
				a := action.LeftAction(edge.Relation)
				return &a
			}
		}
	}

	// After PHRASE pushes the new phrase node, s0 is the phrase and s1 is
	// the node inside it: drop the internal node once all its edges are
	// accounted for.
	if o.covers(s0, s1) && o.hasAllEdges(s1) {
		a := action.ReduceAction(1)
		return &a
	}

	if o.expectedPhrase(s1, s0) != nil && o.output.Phrase(s1, s0) == nil &&
		s0 != nil && s1 != nil && s0.Index == s1.Index+1 &&
		(!o.hasAnyExpectedDependents(s0) || o.hasAnyDependents(s0)) {
		a := action.PhraseAction()
		return &a
	}

	if o.addSubgraph() {
		if o.addElidedSubject() {
			a := action.SubjectAction()
			return &a
		}
		a := action.SubgraphAction()
		return &a
	}

	q0 := o.parser.Queue.Peek()
	if q0 == nil && o.addElidedSubject() {
		a := action.SubjectAction()
		return &a
	}

	if s0 != nil && o.hasAllEdges(s0) {
		a := action.ReduceAction(0)
		return &a
	}

	if q0 != nil {
		a := action.ShiftAction()
		return &a
	}

	s2 := o.stack(2)
	if s2 != nil && o.expectedEdge(s0, s2) != nil {
		a := action.ReduceAction(1)
		return &a
	}

	if pos, ok := o.addEmpty(); ok {
		a := action.EmptyAction(pos)
		return &a
	}

	if s0 != nil {
		a := action.ReduceAction(0)
		return &a
	}

	return nil
}

func (o *Oracle) addEmpty() (morph.PartOfSpeech, bool) {
	if o.stack(1) == nil {
		return 0, false
	}
	n1 := o.expectedNode(o.stack(0))
	n2 := o.expectedNode(o.stack(1))
	if n1 == nil || n2 == nil {
		return 0, false
	}

	if h1 := o.expected.Head(n1); h1 != nil && h1.Word.Type == morph.Elided &&
		o.expected.Head(h1) == n2 && h1.Word.ElidedPOS != morph.Pronoun {
		return h1.Word.ElidedPOS, true
	}

	if h2 := o.expected.Head(n2); h2 != nil && h2.Word.Type == morph.Elided &&
		o.expected.Head(h2) == n1 && h2.Word.ElidedPOS != morph.Pronoun {
		return h2.Word.ElidedPOS, true
	}

	return 0, false
}

func (o *Oracle) covers(phraseNode, childNode *graph.SyntaxNode) bool {
	if phraseNode == nil || childNode == nil || !phraseNode.IsPhrase() || childNode.IsPhrase() {
		return false
	}
	return childNode.Index >= phraseNode.Start.Index && childNode.Index <= phraseNode.End.Index
}

func (o *Oracle) addSubgraph() bool {
	start := o.stack(0)
	if start == nil {
		return false
	}
	end := subgraph.End(o.output, start)
	if end == nil {
		return false
	}
	if o.output.Phrase(start, end) != nil {
		return false
	}
	expectedStart, expectedEnd := o.expectedNode(start), o.expectedNode(end)
	if expectedStart == nil || expectedEnd == nil {
		return false
	}
	return o.expected.Phrase(expectedStart, expectedEnd) != nil
}

func (o *Oracle) hasAllEdges(outputNode *graph.SyntaxNode) bool {
	// A node with no gold counterpart counts zero expected edges, so it
	// reduces as soon as it has no output edges either.
	expectedNode := o.expectedNode(outputNode)

	expectedCount := 0
	for _, e := range o.expected.Edges {
		if e.Dependent == expectedNode || e.Head == expectedNode {
			expectedCount++
		}
	}

	outputCount := 0
	for _, e := range o.output.Edges {
		if e.Dependent == outputNode || e.Head == outputNode {
			outputCount++
		}
	}

	return expectedCount == outputCount
}

func (o *Oracle) addElidedSubject() bool {
	outputNode := o.stack(0)
	if outputNode == nil {
		return false
	}
	expectedNode := o.expectedNode(outputNode)
	if expectedNode == nil {
		return false
	}
	return o.hasElidedSubject(o.expected, expectedNode) && !o.hasElidedSubject(o.output, outputNode)
}

func (o *Oracle) hasElidedSubject(g *graph.SyntaxGraph, node *graph.SyntaxNode) bool {
	for _, e := range g.Edges {
		if e.Head != node {
			continue
		}
		if e.Relation != graph.Subject && e.Relation != graph.PassiveSubject {
			continue
		}
		dependent := e.Dependent
		if dependent.Word.Type == morph.Elided && dependent.Word.ElidedPOS == morph.Pronoun {
			return true
		}
	}
	return false
}

func (o *Oracle) hasAnyDependents(node *graph.SyntaxNode) bool {
	for _, e := range o.output.Edges {
		if e.Head == node {
			return true
		}
	}
	return false
}

func (o *Oracle) hasAnyExpectedDependents(node *graph.SyntaxNode) bool {
	expectedNode := o.expectedNode(node)
	for _, e := range o.expected.Edges {
		if e.Head == expectedNode {
			return true
		}
	}
	return false
}

func (o *Oracle) expectedPhrase(start, end *graph.SyntaxNode) *graph.SyntaxNode {
	if start == nil || end == nil {
		return nil
	}
	es, ee := o.expectedNode(start), o.expectedNode(end)
	if es == nil || ee == nil {
		return nil
	}
	return o.expected.Phrase(es, ee)
}

func (o *Oracle) expectedEdge(n1, n2 *graph.SyntaxNode) *graph.Edge {
	e1, e2 := o.expectedNode(n1), o.expectedNode(n2)
	if e1 == nil || e2 == nil {
		return nil
	}
	return o.expected.Edge(e1, e2)
}

// expectedNode maps an output-graph node onto its gold-graph counterpart.
// Segment nodes present from the start are already in the map (built
// eagerly in buildNodeMap); phrase nodes and later-inserted elided nodes
// are resolved lazily by structural equality and cached.
func (o *Oracle) expectedNode(outputNode *graph.SyntaxNode) *graph.SyntaxNode {
	if outputNode == nil {
		return nil
	}
	if n, ok := o.nodeMap[outputNode]; ok {
		return n
	}

	if outputNode.IsPhrase() {
		for _, n := range o.expected.Phrases {
			if graph.Equivalent(n, outputNode) {
				o.nodeMap[outputNode] = n
				return n
			}
		}
		return nil
	}

	var match *graph.SyntaxNode
	for _, n := range o.expected.SegmentNodes {
		if !graph.Equivalent(n, outputNode) {
			continue
		}
		if match == nil {
			match = n
			continue
		}
		if abs(outputNode.Index-n.Index) < abs(outputNode.Index-match.Index) {
			match = n
		}
	}
	if match != nil {
		o.nodeMap[outputNode] = match
	}
	return match
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
