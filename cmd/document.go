package cmd

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"layersync/core/config"
	"layersync/core/document"
	"layersync/core/layer"
	"layersync/core/storage"
)

// source is where a command reads its document from and writes it back to.
type source struct {
	name string
	file string
	docs *storage.Documents
}

// openSource resolves the document named by args, or the configured one. A
// non-empty file wins over the bucket.
func openSource(cfg *config.Config, args []string, file string) (*source, error) {
	src := &source{name: cfg.Layers.Document, file: file}
	if len(args) > 0 {
		src.name = args[0]
	}
	if file != "" {
		return src, nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	src.docs = storage.NewDocuments(client, cfg.Storage)
	return src, nil
}

func (s *source) String() string {
	if s.file != "" {
		return s.file
	}
	return s.docs.Bucket() + "/" + s.docs.Key(s.name)
}

func (s *source) load(ctx context.Context) (*document.Document, error) {
	var data []byte
	var err error
	if s.file != "" {
		data, err = os.ReadFile(s.file)
	} else {
		data, err = s.docs.Load(ctx, s.name)
	}
	if err != nil {
		return nil, err
	}
	return document.Decode(bytes.NewReader(data))
}

func (s *source) save(ctx context.Context, doc *document.Document) error {
	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		return err
	}
	if s.file != "" {
		return os.WriteFile(s.file, buf.Bytes(), 0o644)
	}
	return s.docs.Save(ctx, s.name, buf.Bytes())
}

// confirm asks on stdin unless yes is set.
func confirm(prompt string, yes bool) bool {
	if yes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  %s Type 'yes' to confirm: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}

// printTree writes one line per node: index, indented name, flags, and a
// star on the active node.
func printTree(w io.Writer, vl *layer.ViewLayer) {
	root := vl.Root()
	if root == nil {
		fmt.Fprintln(w, "(not synced)")
		return
	}
	indexes := vl.Indexes()
	root.Walk(func(n *layer.LayerNode) bool {
		depth := 0
		for p := n.Parent(); p != nil; p = p.Parent() {
			depth++
		}

		line := fmt.Sprintf("%3d %s%s", indexes[n], strings.Repeat("  ", depth), n.Name())
		if flags := document.NodeFlagNames(n.Flag); len(flags) > 0 {
			line += " [" + strings.Join(flags, ",") + "]"
		}
		if n.Runtime&layer.RuntimeVisibleViewLayer == 0 && n != root {
			line += " (hidden)"
		}
		if n == vl.ActiveNode() {
			line += " *"
		}
		fmt.Fprintln(w, line)
		return true
	})
}
