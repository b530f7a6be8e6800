package workspace

const seedHTML = `<div class="app">
  <h1>Welcome to webpen</h1>
  <p>Edit this file and watch the preview update.</p>
  <button id="counter">Clicked 0 times</button>
</div>
`

const seedCSS = `body {
  font-family: sans-serif;
  margin: 2rem;
  background: #fafafa;
}

.app h1 {
  color: #2c3e50;
}

#counter {
  padding: 0.5rem 1rem;
  cursor: pointer;
}
`

const seedJS = `let clicks = 0;
const button = document.getElementById('counter');

button.addEventListener('click', () => {
  clicks++;
  button.textContent = 'Clicked ' + clicks + ' times';
});
`

const seedReadme = `# Scratch workspace

Files here live in memory for the current session only.
Use the chat pane to ask the model for code and apply the
reply's code block to the selected file.
`

// Seed builds the fixed starter workspace every session begins with.
func Seed() *Tree {
	t := New()
	// The starter content is fixed, so none of these can fail validation.
	t.mustCreate("index.html", "", seedHTML)
	t.mustCreate("styles.css", "", seedCSS)
	t.mustCreate("script.js", "", seedJS)
	docs, _ := t.CreateFolder("docs", "")
	if docs != nil {
		t.mustCreate("README.md", docs.ID, seedReadme)
	}
	return t
}

func (t *Tree) mustCreate(name, parentID, content string) {
	if _, err := t.Create(name, parentID, content); err != nil {
		panic("workspace: seeding failed: " + err.Error())
	}
}
