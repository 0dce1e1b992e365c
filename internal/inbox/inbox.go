package inbox

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

//go:embed seed.toml
var defaultSeed []byte

// Message is one demo mail.
type Message struct {
	ID      string `toml:"-"`
	From    string `toml:"from"`
	Subject string `toml:"subject"`
	Preview string `toml:"preview"`
	Unread  bool   `toml:"unread"`
	Flagged bool   `toml:"flagged"`
	Starred bool   `toml:"starred"`
	Pinned  bool   `toml:"pinned"`
}

type seedFile struct {
	Message []Message `toml:"message"`
}

// Load reads a seed file. An empty path loads the built-in seed.
func Load(path string) ([]Message, error) {
	if path == "" {
		return Parse(defaultSeed)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inbox seed: %w", err)
	}
	return Parse(data)
}

// Parse decodes seed TOML. Messages get ids derived from their content so
// the same seed always yields the same ids.
func Parse(data []byte) ([]Message, error) {
	var seed seedFile
	if err := toml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse inbox seed: %w", err)
	}
	if len(seed.Message) == 0 {
		return nil, fmt.Errorf("no messages defined in seed")
	}
	for i := range seed.Message {
		m := &seed.Message[i]
		if strings.TrimSpace(m.From) == "" {
			return nil, fmt.Errorf("message[%d]: from is required", i)
		}
		if strings.TrimSpace(m.Subject) == "" {
			return nil, fmt.Errorf("message[%d]: subject is required", i)
		}
		key := fmt.Sprintf("msg:%d:%s:%s", i, m.From, m.Subject)
		m.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
	}
	return seed.Message, nil
}

// Box is the mutable inbox. It is only touched from the UI update loop.
type Box struct {
	messages []Message
}

func NewBox(messages []Message) *Box {
	return &Box{messages: slices.Clone(messages)}
}

func (b *Box) Len() int { return len(b.messages) }

// Messages returns a copy of the inbox, pinned messages first.
func (b *Box) Messages() []Message {
	out := slices.Clone(b.messages)
	slices.SortStableFunc(out, func(x, y Message) int {
		switch {
		case x.Pinned == y.Pinned:
			return 0
		case x.Pinned:
			return -1
		default:
			return 1
		}
	})
	return out
}

func (b *Box) Get(id string) (Message, bool) {
	i := b.index(id)
	if i < 0 {
		return Message{}, false
	}
	return b.messages[i], true
}

func (b *Box) index(id string) int {
	return slices.IndexFunc(b.messages, func(m Message) bool { return m.ID == id })
}

// Remove drops a message; it reports whether the id was present.
func (b *Box) Remove(id string) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	b.messages = slices.Delete(b.messages, i, i+1)
	return true
}

// Update applies fn to the message with id.
func (b *Box) Update(id string, fn func(*Message)) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	fn(&b.messages[i])
	return true
}
