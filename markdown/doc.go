// Package markdown reads and writes RecipeMD-flavored Markdown: the H1
// title, italic tag line, bold yield line, horizontal-rule-delimited
// ingredient and instruction sections, and H2 ingredient groups. It also
// splits instruction text into editable sections and renders previews.
package markdown
