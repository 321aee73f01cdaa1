package completions

import (
	"fmt"
	"strings"
)

// GenerateBash returns a bash script completing commands, flags and closed
// argument values for bin.
func GenerateBash(bin string, commands []CommandInfo) string {
	fn := "_" + identifier(bin) + "_completions"
	global := globalFlags(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n\n", bin)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	fmt.Fprintf(&b, "    local path=%q\n", bin)
	b.WriteString("    local i\n")
	b.WriteString("    for ((i=1; i<COMP_CWORD; i++)); do\n")
	b.WriteString("        case \"${COMP_WORDS[i]}\" in\n")
	b.WriteString("            -*) ;;\n")
	b.WriteString("            *) path=\"$path ${COMP_WORDS[i]}\" ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n\n")
	b.WriteString("    local opts=\"\"\n")
	b.WriteString("    case \"$path\" in\n")
	for _, cmd := range commands {
		words := append(append(append([]string{}, cmd.Subcommands...), cmd.Values...), flagNames(cmd.Flags)...)
		if len(cmd.Path) > 1 {
			words = append(words, global...)
		} else if len(words) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %q) opts=%q ;;\n", caseKey(bin, cmd.Path), strings.Join(words, " "))
	}
	b.WriteString("    esac\n\n")
	b.WriteString("    COMPREPLY=( $(compgen -W \"$opts\" -- \"$cur\") )\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, bin)

	return b.String()
}

// GenerateZsh returns a zsh completion function for bin, with summaries.
func GenerateZsh(bin string, commands []CommandInfo) string {
	fn := "_" + identifier(bin)
	byPath := indexByPath(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", bin)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local -a path_words\n")
	b.WriteString("    local w\n")
	b.WriteString("    for w in ${words[2,CURRENT-1]}; do\n")
	b.WriteString("        [[ $w == -* ]] || path_words+=$w\n")
	b.WriteString("    done\n")
	fmt.Fprintf(&b, "    %s_commands \"%s${path_words:+ ${path_words[*]}}\"\n", fn, bin)
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s_commands() {\n", fn)
	b.WriteString("    local -a entries\n")
	b.WriteString("    case \"$1\" in\n")
	for _, cmd := range commands {
		var entries []string
		for _, name := range cmd.Subcommands {
			summary := ""
			if child, ok := byPath[strings.Join(append(append([]string{}, cmd.Path...), name), " ")]; ok {
				summary = child.Summary
			}
			entries = append(entries, zshEntry(name, summary))
		}
		for _, v := range cmd.Values {
			entries = append(entries, zshEntry(v, ""))
		}
		for _, f := range cmd.Flags {
			for _, name := range f.Names {
				entries = append(entries, zshEntry(name, f.Description))
			}
		}
		if len(entries) == 0 {
			continue
		}

		fmt.Fprintf(&b, "        %q)\n", caseKey(bin, cmd.Path))
		b.WriteString("            entries=(\n")
		for _, e := range entries {
			fmt.Fprintf(&b, "                %s\n", e)
		}
		b.WriteString("            )\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("    if (( ${#entries} )); then\n")
	b.WriteString("        _describe 'command' entries\n")
	b.WriteString("    fi\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "%s \"$@\"\n", fn)

	return b.String()
}

// GenerateFish returns fish complete commands for bin.
func GenerateFish(bin string, commands []CommandInfo) string {
	byPath := indexByPath(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n", bin)

	for _, cmd := range commands {
		depth := len(cmd.Path) - 1
		parents := cmd.Path[1:]

		for _, f := range cmd.Flags {
			cond := ""
			if depth > 0 {
				cond = fishSeen(parents)
			}
			b.WriteString(fishFlag(bin, cond, f))
		}

		if len(cmd.Values) > 0 {
			fmt.Fprintf(&b, "complete -c %s -n %s -a %s\n", bin,
				fishQuote(fishSeen(parents)), fishQuote(strings.Join(cmd.Values, " ")))
		}

		for _, name := range cmd.Subcommands {
			child := byPath[strings.Join(append(append([]string{}, cmd.Path...), name), " ")]

			cond := "__fish_use_subcommand"
			if depth > 0 {
				cond = fishSeen(parents) + "; and not __fish_seen_subcommand_from " + strings.Join(cmd.Subcommands, " ")
			}
			fmt.Fprintf(&b, "complete -c %s -n %s -a %s -d %s\n", bin,
				fishQuote(cond), fishQuote(name), fishQuote(child.Summary))
		}
	}

	return b.String()
}

func fishSeen(path []string) string {
	conds := make([]string, len(path))
	for i, p := range path {
		conds[i] = "__fish_seen_subcommand_from " + p
	}
	return strings.Join(conds, "; and ")
}

func fishFlag(bin, cond string, f FlagInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "complete -c %s", bin)
	if cond != "" {
		fmt.Fprintf(&b, " -n %s", fishQuote(cond))
	}
	for _, name := range f.Names {
		switch {
		case strings.HasPrefix(name, "--"):
			fmt.Fprintf(&b, " -l %s", name[2:])
		case strings.HasPrefix(name, "-"):
			fmt.Fprintf(&b, " -s %s", name[1:])
		}
	}
	if f.HasValue {
		b.WriteString(" -r")
	}
	fmt.Fprintf(&b, " -d %s\n", fishQuote(f.Description))
	return b.String()
}

func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func zshEntry(name, summary string) string {
	name = strings.ReplaceAll(name, ":", `\:`)
	if summary == "" {
		return shellQuote(name)
	}
	return shellQuote(name + ":" + summary)
}

// shellQuote single-quotes s for sh-like shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func globalFlags(commands []CommandInfo) []string {
	for _, cmd := range commands {
		if len(cmd.Path) == 1 {
			return flagNames(cmd.Flags)
		}
	}
	return nil
}

func flagNames(flags []FlagInfo) []string {
	var names []string
	for _, f := range flags {
		names = append(names, f.Names...)
	}
	return names
}

// caseKey is the words typed so far, with the binary as invoked.
func caseKey(bin string, path []string) string {
	return strings.Join(append([]string{bin}, path[1:]...), " ")
}

func indexByPath(commands []CommandInfo) map[string]CommandInfo {
	out := make(map[string]CommandInfo, len(commands))
	for _, cmd := range commands {
		out[strings.Join(cmd.Path, " ")] = cmd
	}
	return out
}

// identifier turns a binary name into a shell function name fragment.
func identifier(bin string) string {
	id := []byte(bin)
	for i, c := range id {
		if !(c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			id[i] = '_'
		}
	}
	return string(id)
}
