package graph_test

import (
	"fmt"

	"github.com/Maxyme/gml-to-graphml/pkg/graph"
	"github.com/Maxyme/gml-to-graphml/pkg/value"
)

func ExampleCounter() {
	rec := &graph.Recorder{}
	c := graph.NewCounter(rec)

	g := graph.NewGraph()
	g.SetDirected(true)
	c.WriteGraph(g)

	n := graph.NewNode()
	for _, id := range []string{"1", "2"} {
		n.ID = id
		n.Attrs.Add("label", value.Text("node "+id))
		c.WriteNode(n)
		n.Reset()
	}

	e := graph.NewEdge()
	e.Source, e.Target = "1", "2"
	c.WriteEdge(e)
	c.Close()

	fmt.Printf("%d nodes, %d edges, %d attributes\n", c.Stats.Nodes, c.Stats.Edges, c.Stats.Attrs)
	fmt.Println(rec.Graph.IsDirected(), rec.Nodes[1].ID, rec.Closed)
	// Output:
	// 2 nodes, 1 edges, 2 attributes
	// true 2 true
}
