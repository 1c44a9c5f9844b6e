package content

var (
	AboutMe = `Software Engineering student (4º semestre) com foco em desenvolvimento Back-End Java e interesse em Arquitetura de Software.
	Atualmente atuo como desenvolvedor no BNDES, participando da construção e manutenção de soluções internas, com foco em organização, automação e melhoria de processos.
	Sou formado pelo programa Oracle Next Education (ONE - G7), com foco em Java e Spring Framework, e continuo aprofundando meus conhecimentos em arquitetura, banco de dados e boas práticas de desenvolvimento.`

	EducationSummary = `Formação focada em arquitetura de software, backend e
	sistemas escaláveis.`

	CondominiumProject = `Sistema de gestão de moradores com controle de acesso e organização de dados.`

	PortfolioProject = `Portfólio moderno com troca dinâmica de tema e dark mode.`
)
